package ifc

import (
	"github.com/google/uuid"

	"github.com/infragrid/ifcforge/pkg/geom"
)

// PlacementKind is the single placement discipline an element uses.
// Exactly one applies per element, declared explicitly by the builder
// and validated by the document before emission.
type PlacementKind int

const (
	// PlacementAbsolute attaches the transform to the element itself
	// with no parent frame; geometry is in local coordinates.
	PlacementAbsolute PlacementKind = iota
	// PlacementBaked means the transform is already applied to every
	// vertex and the element placement is identity at the origin.
	PlacementBaked
)

func (k PlacementKind) String() string {
	if k == PlacementBaked {
		return "baked"
	}
	return "absolute"
}

// Element classes used by the builders.
const (
	ClassProxy              = "IfcBuildingElementProxy"
	ClassPipeSegment        = "IfcPipeSegment"
	ClassCableCarrier       = "IfcCableCarrierSegment"
	ClassMechanicalFastener = "IfcMechanicalFastener"
	ClassLightFixture       = "IfcLightFixture"
	ClassSign               = "IfcSign"
	ClassFooting            = "IfcFooting"
	ClassGeographicElement  = "IfcGeographicElement"
	ClassSlab               = "IfcSlab"
)

// Part is a tagged group of solids sharing a category and a surface
// color. Categories let coloring be a pure function over tags rather
// than identity checks against side lists.
type Part struct {
	Category string // e.g. "pole", "fixture", "lid", "body"
	Color    *RGB
	Solids   []Solid
}

// Property is one descriptive key/value attached to an element.
type Property struct {
	Name  string
	Value any
}

// PropertySet is a named group of descriptive properties.
type PropertySet struct {
	Name       string
	Properties []Property
}

// Element is one produced exchange-format product: a class, a placement
// under exactly one discipline, tagged solid parts, and optional
// descriptive property sets.
type Element struct {
	GlobalID       string
	Class          string
	Name           string
	PredefinedType string
	PlacementKind  PlacementKind
	Placement      geom.Mat4
	Parts          []Part
	PropertySets   []PropertySet
}

// NewElement creates an element of the given class with a fresh GlobalID
// and an identity placement.
func NewElement(class, name string) *Element {
	return &Element{
		GlobalID:  uuid.NewString(),
		Class:     class,
		Name:      name,
		Placement: geom.Identity(),
	}
}

// AddPart appends a tagged part. Nil colors mean "no style".
func (e *Element) AddPart(category string, color *RGB, solids ...Solid) {
	if len(solids) == 0 {
		return
	}
	e.Parts = append(e.Parts, Part{Category: category, Color: color, Solids: solids})
}

// SolidCount returns the total number of solids across all parts.
func (e *Element) SolidCount() int {
	n := 0
	for _, p := range e.Parts {
		n += len(p.Solids)
	}
	return n
}

// PartByCategory returns the first part with the given category, or nil.
func (e *Element) PartByCategory(category string) *Part {
	for i := range e.Parts {
		if e.Parts[i].Category == category {
			return &e.Parts[i]
		}
	}
	return nil
}

// AddPropertySet attaches a descriptive property set.
func (e *Element) AddPropertySet(ps PropertySet) {
	e.PropertySets = append(e.PropertySets, ps)
}
