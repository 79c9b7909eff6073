package builder

import "slices"

var (
	buildTimeGenerators = []Generator{
		PropertyDirectiveGenerator{},
		FieldDirectiveGenerator{},
		TypeOptionsGenerator{},
		MapGenerator{},
		CollectionGenerator{},
		BeanGenerator{},
	}

	// run-time maps were declared explicitly, so the plain-record fallback
	// is left out
	runTimeGenerators = []Generator{
		PropertyDirectiveGenerator{},
		FieldDirectiveGenerator{},
		TypeOptionsGenerator{},
		MapGenerator{},
		CollectionGenerator{},
	}
)

// BuildTimeGenerators returns the pipeline used for pairs without an
// explicit declaration.
func BuildTimeGenerators() []Generator {
	return slices.Clone(buildTimeGenerators)
}

// RunTimeGenerators returns the pipeline used to fill gaps in explicitly
// declared class maps.
func RunTimeGenerators() []Generator {
	return slices.Clone(runTimeGenerators)
}
