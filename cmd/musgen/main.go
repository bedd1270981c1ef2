package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"

	"github.com/mercil/assetrank/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/mercil/assetrank/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())
	g.AddDefinedType(reflect.TypeFor[core.TriState]())

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)
	err = g.AddStruct(reflect.TypeFor[core.Asset](),
		structops.WithField(), // Id
		structops.WithField(), // Ref
		structops.WithField(), // Name
		structops.WithField(), // AssetTypeID
		structops.WithField(), // AssetTypeName
		structops.WithField(), // Price
		structops.WithField(), // PetFriendly
		structops.WithField(), // Latitude
		structops.WithField(), // Longitude
		structops.WithField(), // Village
		structops.WithField(), // Road
		structops.WithField(), // Description
		structops.WithField(), // Bedrooms
		structops.WithField(), // Bathrooms
		structops.WithField(), // PoiDistances
		structops.WithField(), // PoiNames
		structops.WithField(), // LifestyleScore
		structops.WithField(), // Vector
		structops.WithField(opts), // InsertedAt
		structops.WithField(opts)) // UpdatedAt
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
