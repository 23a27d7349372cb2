package model

// Default values substituted once at ingestion. Builders can then assume
// fully-populated records instead of re-deriving fallbacks per access.
const (
	DefaultProjectName = "InfraGrid3D Project"
	DefaultUnit        = "meters"

	DefaultChamberWidth  = 1.0 // meters
	DefaultChamberLength = 1.0
	MinPlanDimension     = 0.01 // meters
	MinChamberHeight     = 0.1

	DefaultPipeDiameter = 100 // millimeters

	DefaultTrayWidth           = 300 // millimeters
	DefaultTrayHeight          = 50
	DefaultTrayWallThickness   = 1.5
	DefaultTrayBottomThickness = 1.5

	DefaultHangerHeight        = 500 // millimeters
	DefaultHangerRodDiameter   = 12
	DefaultHangerTrayWidth     = 300
	DefaultHangerCrossbarWidth = 41
	DefaultHangerCrossbarDepth = 41
	DefaultHangerColor         = "#888888"

	DefaultPoleHeight      = 6.0 // meters
	DefaultPoleDiameter    = 150 // millimeters
	DefaultPoleTaperRatio  = 0.7
	DefaultBaseplateWidth  = 400 // millimeters
	DefaultBaseplateThick  = 20
	DefaultFoundationWidth = 600 // millimeters
	DefaultFoundationDepth = 800
	DefaultBoltCount       = 4
	DefaultBoltDiameter    = 24 // millimeters
	DefaultBoltLength      = 400
	DefaultGussetHeight    = 100 // millimeters
	DefaultGussetThickness = 10

	DefaultFixtureWidth   = 600 // millimeters
	DefaultFixtureHeight  = 120
	DefaultFixtureDepth   = 300
	DefaultArmDiameter    = 60 // millimeters
	DefaultArmAngle       = 10 // degrees
	DefaultHousingColor   = "#333333"
	DefaultSignThickness  = 3 // millimeters
	DefaultSignBackground = "#FFFFFF"

	DefaultKerbWidth     = 0.15 // meters
	DefaultKerbTopWidth  = 0.125
	DefaultKerbHeight    = 0.255
	DefaultHaunchWidth   = 0.15
	DefaultHaunchHeight  = 0.2
	DefaultFootwayWidth  = 2.0
	DefaultFootwayHeight = 0.15
	DefaultBeddingWidth  = 0.3
	DefaultBeddingHeight = 0.15
)

// Normalize substitutes defaults into every record of the request.
// It mutates the request in place and returns it for chaining.
func (r *ExportRequest) Normalize() *ExportRequest {
	if r.Project.Name == "" {
		r.Project.Name = DefaultProjectName
	}
	if r.Project.Unit == "" {
		r.Project.Unit = DefaultUnit
	}

	for i := range r.Chambers {
		normalizeChamber(&r.Chambers[i])
	}
	for i := range r.Pipes {
		if r.Pipes[i].Diameter <= 0 {
			r.Pipes[i].Diameter = DefaultPipeDiameter
		}
	}
	for i := range r.CableTrays {
		normalizeTray(&r.CableTrays[i])
	}
	for i := range r.Hangers {
		normalizeHanger(&r.Hangers[i])
	}
	for i := range r.PublicLights {
		normalizeLight(&r.PublicLights[i])
	}
	for i := range r.LightConnections {
		if r.LightConnections[i].Diameter <= 0 {
			r.LightConnections[i].Diameter = 50
		}
	}
	for i := range r.Roads {
		normalizeRoad(&r.Roads[i])
	}
	return r
}

func normalizeChamber(c *Chamber) {
	if c.Shape == "" {
		c.Shape = "rectangle"
	}
	if c.Width <= 0 {
		c.Width = DefaultChamberWidth
	}
	if c.Length <= 0 {
		c.Length = DefaultChamberLength
	}
	c.Width = max(c.Width, MinPlanDimension)
	c.Length = max(c.Length, MinPlanDimension)
	if c.Diameter > 0 {
		c.Diameter = max(c.Diameter, MinPlanDimension)
	}
	c.WallThickness = max(c.WallThickness, 0)
	c.BaseThickness = max(c.BaseThickness, 0)
	c.TopThickness = max(c.TopThickness, 0)
}

func normalizeTray(t *CableTray) {
	if t.Width <= 0 {
		t.Width = DefaultTrayWidth
	}
	if t.Height <= 0 {
		t.Height = DefaultTrayHeight
	}
	if t.WallThickness <= 0 {
		t.WallThickness = DefaultTrayWallThickness
	}
	if t.BottomThickness <= 0 {
		t.BottomThickness = DefaultTrayBottomThickness
	}
}

func normalizeHanger(h *Hanger) {
	if h.Height <= 0 {
		h.Height = DefaultHangerHeight
	}
	if h.RodDiameter <= 0 {
		h.RodDiameter = DefaultHangerRodDiameter
	}
	if h.TrayWidth <= 0 {
		h.TrayWidth = DefaultHangerTrayWidth
	}
	if h.CrossbarWidth <= 0 {
		h.CrossbarWidth = DefaultHangerCrossbarWidth
	}
	if h.CrossbarDepth <= 0 {
		h.CrossbarDepth = DefaultHangerCrossbarDepth
	}
	if h.Color == "" {
		h.Color = DefaultHangerColor
	}
	if h.Direction == (Point{}) {
		h.Direction = Point{1, 0, 0}
	}
}

func normalizeLight(l *PublicLight) {
	if l.Type == "" {
		l.Type = "light"
	}
	p := &l.Pole
	if p.Height <= 0 {
		p.Height = DefaultPoleHeight
	}
	if p.Diameter <= 0 {
		p.Diameter = DefaultPoleDiameter
	}
	if p.TaperRatio <= 0 || p.TaperRatio > 1 {
		p.TaperRatio = DefaultPoleTaperRatio
	}
	if p.BaseType == "" {
		p.BaseType = BaseEmbedded
	}
	if p.BaseplateWidth <= 0 {
		p.BaseplateWidth = DefaultBaseplateWidth
	}
	if p.BaseplateThickness <= 0 {
		p.BaseplateThickness = DefaultBaseplateThick
	}
	if p.FoundationWidth <= 0 {
		p.FoundationWidth = DefaultFoundationWidth
	}
	if p.FoundationHeight <= 0 {
		p.FoundationHeight = DefaultFoundationDepth
	}
	if p.BoltCount <= 0 {
		p.BoltCount = DefaultBoltCount
	}
	if p.BoltDiameter <= 0 {
		p.BoltDiameter = DefaultBoltDiameter
	}
	if p.BoltLength <= 0 {
		p.BoltLength = DefaultBoltLength
	}
	if p.BoltCircle <= 0 {
		// Default bolt circle sits between the pole and the plate edge.
		p.BoltCircle = (p.Diameter + p.BaseplateWidth) / 2
	}
	if p.GussetHeight <= 0 {
		p.GussetHeight = DefaultGussetHeight
	}
	if p.GussetThickness <= 0 {
		p.GussetThickness = DefaultGussetThickness
	}

	f := &l.Fixture
	if f.Style == "" {
		f.Style = FixtureShoebox
	}
	if f.Count <= 0 {
		f.Count = 1
	}
	if f.Spacing <= 0 {
		f.Spacing = 0.5
	}
	if f.Width <= 0 {
		f.Width = DefaultFixtureWidth
	}
	if f.Height <= 0 {
		f.Height = DefaultFixtureHeight
	}
	if f.Depth <= 0 {
		f.Depth = DefaultFixtureDepth
	}
	if f.HousingColor == "" {
		f.HousingColor = DefaultHousingColor
	}
	if f.ArmDiameter <= 0 {
		f.ArmDiameter = DefaultArmDiameter
	}
	if f.ArmAngle == 0 {
		f.ArmAngle = DefaultArmAngle
	}

	if l.Sign != nil {
		s := l.Sign
		if s.Shape == "" {
			s.Shape = "rectangle"
		}
		if s.Thickness <= 0 {
			s.Thickness = DefaultSignThickness
		}
		if s.BackgroundColor == "" {
			s.BackgroundColor = DefaultSignBackground
		}
	}
}

func normalizeRoad(rc *RoadComponent) {
	p := &rc.Profile
	switch rc.Type {
	case RoadKerb:
		if p.Width <= 0 {
			p.Width = DefaultKerbWidth
		}
		if p.TopWidth <= 0 {
			p.TopWidth = DefaultKerbTopWidth
		}
		if p.Height <= 0 {
			p.Height = DefaultKerbHeight
		}
	case RoadHaunch:
		if p.Width <= 0 {
			p.Width = DefaultHaunchWidth
		}
		if p.TopWidth <= 0 {
			p.TopWidth = p.Width / 3
		}
		if p.Height <= 0 {
			p.Height = DefaultHaunchHeight
		}
	case RoadFootway:
		if p.Width <= 0 {
			p.Width = DefaultFootwayWidth
		}
		if p.Height <= 0 {
			p.Height = DefaultFootwayHeight
		}
	case RoadBedding:
		if p.Width <= 0 {
			p.Width = DefaultBeddingWidth
		}
		if p.Height <= 0 {
			p.Height = DefaultBeddingHeight
		}
	}
}
