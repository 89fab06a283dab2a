package model

type ProjectType string

const (
	ProjectTypeOffice      ProjectType = "office"
	ProjectTypeRetail      ProjectType = "retail"
	ProjectTypeRestaurant  ProjectType = "restaurant"
	ProjectTypeMedical     ProjectType = "medical"
	ProjectTypeEducational ProjectType = "educational"
	ProjectTypeIndustrial  ProjectType = "industrial"
	ProjectTypeWarehouse   ProjectType = "warehouse"
	ProjectTypeHotel       ProjectType = "hotel"
	ProjectTypeMultifamily ProjectType = "multifamily"
	ProjectTypeGovernment  ProjectType = "government"
)

// ProjectTypes lists every supported project type in catalog order.
var ProjectTypes = []ProjectType{
	ProjectTypeOffice,
	ProjectTypeRetail,
	ProjectTypeRestaurant,
	ProjectTypeMedical,
	ProjectTypeEducational,
	ProjectTypeIndustrial,
	ProjectTypeWarehouse,
	ProjectTypeHotel,
	ProjectTypeMultifamily,
	ProjectTypeGovernment,
}

func (t ProjectType) Valid() bool {
	for _, known := range ProjectTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CleaningType is the post-construction cleaning stage.
type CleaningType string

const (
	CleaningTypeRough    CleaningType = "rough"
	CleaningTypeFinal    CleaningType = "final"
	CleaningTypeTouchUp  CleaningType = "touch_up"
	CleaningTypeComplete CleaningType = "complete"
)

var CleaningTypes = []CleaningType{
	CleaningTypeRough,
	CleaningTypeFinal,
	CleaningTypeTouchUp,
	CleaningTypeComplete,
}

func (c CleaningType) Valid() bool {
	for _, known := range CleaningTypes {
		if c == known {
			return true
		}
	}
	return false
}

type FormMode string

const (
	FormModeQuick    FormMode = "quick"
	FormModeDetailed FormMode = "detailed"
)

type ProjectDescription struct {
	ProjectName          string       `json:"project_name,omitempty"`
	SiteAddress          string       `json:"site_address,omitempty"`
	Notes                string       `json:"notes,omitempty"`
	SquareFootage        float64      `json:"square_footage"`
	ProjectType          ProjectType  `json:"project_type"`
	CleaningType         CleaningType `json:"cleaning_type"`
	HasVCTFlooring       bool         `json:"has_vct_flooring"`
	VCTSquareFootage     float64      `json:"vct_square_footage,omitempty"`
	NeedsPressureWashing bool         `json:"needs_pressure_washing"`
	PressureWashingSqFt  float64      `json:"pressure_washing_sqft,omitempty"`
	NeedsWindowCleaning  bool         `json:"needs_window_cleaning"`
	WindowCount          int          `json:"window_count,omitempty"`
	CrewSize             int          `json:"crew_size,omitempty"`
	UrgencyLevel         int          `json:"urgency_level,omitempty"`
	DistanceMiles        float64      `json:"distance_miles,omitempty"`
}

type Customer struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}
