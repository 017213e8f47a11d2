package coverage

// CoverageType names a defensive coverage archetype.
type CoverageType int

const (
	Cover0 CoverageType = iota
	Cover1
	Cover2
	Cover3
	Cover4
	Cover6
	Tampa2
)

func (c CoverageType) String() string {
	switch c {
	case Cover0:
		return "cover-0"
	case Cover1:
		return "cover-1"
	case Cover2:
		return "cover-2"
	case Cover3:
		return "cover-3"
	case Cover4:
		return "cover-4"
	case Cover6:
		return "cover-6"
	case Tampa2:
		return "tampa-2"
	}
	return "unknown"
}

// IsManScheme reports whether the coverage assigns man responsibilities to
// its underneath defenders.
func (c CoverageType) IsManScheme() bool {
	return c == Cover0 || c == Cover1
}

// ParseCoverageType maps a call name ("cover-3", "tampa-2") back to its type.
func ParseCoverageType(name string) (CoverageType, bool) {
	for _, ct := range []CoverageType{Cover0, Cover1, Cover2, Cover3, Cover4, Cover6, Tampa2} {
		if ct.String() == name {
			return ct, true
		}
	}
	return Cover3, false
}

// Rotation is a pre-snap safety/corner rotation call for single-high zone
// coverages. It changes which defender's base alignment plays the rotated
// role; it is not a live post-snap transition.
type Rotation int

const (
	RotationNone  Rotation = iota
	RotationSky                   // strong safety down to the strong curl-flat
	RotationBuzz                  // free safety buzzes to the strong hook
	RotationCloud                 // strong corner squats in the flat, safety over the top
)

func (r Rotation) String() string {
	switch r {
	case RotationSky:
		return "sky"
	case RotationBuzz:
		return "buzz"
	case RotationCloud:
		return "cloud"
	}
	return "none"
}

// ParseRotation maps a rotation name to its value; anything unrecognized
// (including the empty string) is no rotation.
func ParseRotation(name string) Rotation {
	switch name {
	case "sky":
		return RotationSky
	case "buzz":
		return RotationBuzz
	case "cloud":
		return RotationCloud
	}
	return RotationNone
}

// Per-coverage tunables. Each coverage's alignment generator takes its config
// as an explicit value so tests can override individual numbers without any
// shared mutable table.

// Cover1Config tunes the single-high man shell.
type Cover1Config struct {
	CBDepth     float64 // press-man depth on #1
	FSDepth     float64 // center-field depth
	RobberDepth float64 // strong safety hole depth when no #2 exists
	LBManDepth  float64 // backer depth over a back/TE
	TripsShade  float64 // extra FS shade toward trips
}

// DefaultCover1Config returns the base Cover 1 numbers.
func DefaultCover1Config() Cover1Config {
	return Cover1Config{CBDepth: 1, FSDepth: 14, RobberDepth: 5, LBManDepth: 4, TripsShade: 3}
}

// Cover2Config tunes the two-deep five-under shell. Press vs bail is a
// per-corner technique choice; both depths are carried.
type Cover2Config struct {
	CornerPressDepth float64
	CornerBailDepth  float64
	SafetyDepth      float64 // within [15,18]
	SafetySplit      float64 // lateral offset from field center
	HookDepth        float64
	MikeHoleDepth    float64 // Tampa 2 deep-middle landmark
	MikeStartDepth   float64 // Tampa 2 Mike pre-snap depth
	TripsShade       float64
}

// DefaultCover2Config returns the base Cover 2 / Tampa 2 numbers.
func DefaultCover2Config() Cover2Config {
	return Cover2Config{
		CornerPressDepth: 1,
		CornerBailDepth:  6,
		SafetyDepth:      16,
		SafetySplit:      13,
		HookDepth:        9,
		MikeHoleDepth:    18,
		MikeStartDepth:   4.5,
		TripsShade:       2,
	}
}

// Cover3Config tunes the three-deep four-under shell.
type Cover3Config struct {
	ThirdWidth   float64 // deep third width, FieldWidth/3
	DeepDepth    float64 // corner/FS base depth
	HookDepth    float64
	CurlFlatDepth float64
	TripsShade   float64 // safety/corner shade toward trips
}

// DefaultCover3Config returns the base Cover 3 numbers.
func DefaultCover3Config() Cover3Config {
	return Cover3Config{
		ThirdWidth:    FieldWidth / 3, // 17.77
		DeepDepth:     12,
		HookDepth:     9,
		CurlFlatDepth: 5,
		TripsShade:    3,
	}
}

// Cover4Config tunes quarters (and the quarters half of Cover 6).
type Cover4Config struct {
	QuarterWidth float64 // FieldWidth/4
	DeepDepth    float64
	UnderDepth   float64
	HalfDepth    float64 // Cover 6 boundary-half safety depth
	TripsShade   float64
}

// DefaultCover4Config returns the base quarters numbers.
func DefaultCover4Config() Cover4Config {
	return Cover4Config{
		QuarterWidth: FieldWidth / 4, // 13.33
		DeepDepth:    11,
		UnderDepth:   8,
		HalfDepth:    16,
		TripsShade:   2.5,
	}
}

// Coverage bundles the called archetype with its tunables and optional
// rotation. The zero value is a base Cover 3 with default numbers.
type Coverage struct {
	Type     CoverageType
	Rotation Rotation

	C1 Cover1Config
	C2 Cover2Config
	C3 Cover3Config
	C4 Cover4Config
}

// NewCoverage returns a coverage call with default tunables.
func NewCoverage(ct CoverageType) Coverage {
	return Coverage{
		Type: ct,
		C1:   DefaultCover1Config(),
		C2:   DefaultCover2Config(),
		C3:   DefaultCover3Config(),
		C4:   DefaultCover4Config(),
	}
}

// WithRotation returns a copy of the coverage carrying a rotation call.
func (c Coverage) WithRotation(r Rotation) Coverage {
	c.Rotation = r
	return c
}
