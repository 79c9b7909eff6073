package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"structmapper/classmap"
	"structmapper/internal/diagnostic"
	"structmapper/internal/mapping"
)

var errNothingToResolve = errors.New("nothing to resolve: pass --pair or --mappings")

type resolveOptions struct {
	mappingsPath string
	pairs        []string
	outPath      string
}

func newResolveCmd(root *rootOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [flags] <packages...>",
		Short: "Resolve class maps and print them as YAML",
		Long: `Resolve loads the given packages, builds the class maps declared in
--mappings, fills their open correspondences, resolves every --pair
that was not declared, and prints the result in the mapping file schema.`,
		Example: `  structmapper resolve --pair store.Customer=warehouse.Customer ./store ./warehouse
  structmapper resolve -m mappings.yaml -o resolved.yaml ./...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.mappingsPath == "" && len(opts.pairs) == 0 {
				return errNothingToResolve
			}

			s, err := root.load(args)
			if err != nil {
				return err
			}

			mappings, err := s.declared(opts.mappingsPath)
			if err != nil {
				return err
			}

			for _, p := range opts.pairs {
				if err := s.resolvePair(mappings, p); err != nil {
					return err
				}
			}

			data, err := mapping.Marshal(mapping.ExportMappings(mappings))
			if err != nil {
				return err
			}

			if opts.outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(opts.outPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", opts.outPath, err)
			}

			log.Info().Str("path", opts.outPath).Int("mappings", mappings.Len()).Msg("Resolved mappings written")

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.mappingsPath, "mappings", "m", "", "YAML file with declared class maps")
	cmd.Flags().StringArrayVarP(&opts.pairs, "pair", "p", nil, "source=target type pair to resolve (repeatable)")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "write YAML here instead of stdout")

	return cmd
}

// declared builds and completes the class maps of the mapping file. The
// file is validated first.
func (s *session) declared(path string) (*classmap.ClassMappings, error) {
	if path == "" {
		return classmap.NewClassMappings(), nil
	}

	mf, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}

	diags := mapping.Validate(mf, s.resolver, s.oracle)
	for _, d := range diags.Filter(diagnostic.Warning) {
		log.Warn().Str("code", string(d.Code)).Msg(d.Error())
	}

	for _, d := range diags.Filter(diagnostic.Info) {
		log.Debug().Str("code", string(d.Code)).Msg(d.Error())
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %w", path, diags.Err())
	}

	mappings, err := mapping.Build(mf, s.resolver, s.builder)
	if err != nil {
		return nil, err
	}

	if err := s.builder.AddDefaultFieldMappings(mappings); err != nil {
		return nil, err
	}

	return mappings, nil
}

func (s *session) resolvePair(mappings *classmap.ClassMappings, pair string) error {
	srcRef, destRef, ok := strings.Cut(pair, "=")
	if !ok || srcRef == "" || destRef == "" {
		return fmt.Errorf("invalid pair %q: want source=target", pair)
	}

	src, ok := s.resolver.ResolveType(srcRef)
	if !ok {
		return fmt.Errorf("pair %s: %w %q", pair, mapping.ErrUnknownType, srcRef)
	}

	dest, ok := s.resolver.ResolveType(destRef)
	if !ok {
		return fmt.Errorf("pair %s: %w %q", pair, mapping.ErrUnknownType, destRef)
	}

	cm, err := s.builder.ClassMapFor(mappings, src, dest)
	if err != nil {
		return err
	}

	log.Debug().Stringer("pair", cm).Int("fields", cm.Len()).Msg("Pair resolved")

	return nil
}
