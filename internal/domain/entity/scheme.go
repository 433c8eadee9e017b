package entity

import "github.com/lib/pq"

// WildcardValue is stored in a categorical column when a scheme applies to everyone.
const WildcardValue = "all"

// Scheme is a row of the read-only schemes directory.
type Scheme struct {
	SchemeID           int            `gorm:"column:scheme_id;primaryKey;autoIncrement" json:"scheme_id"`
	SchemeName         string         `gorm:"type:text;not null" json:"scheme_name"`
	Description        *string        `gorm:"type:text" json:"description"`
	Benefits           *string        `gorm:"type:text" json:"benefits"`
	Age                string         `gorm:"type:text;not null" json:"age"`
	Gender             string         `gorm:"type:text;not null" json:"gender"`
	Caste              string         `gorm:"type:text;not null" json:"caste"`
	Occupation         string         `gorm:"type:text;not null" json:"occupation"`
	Residence          string         `gorm:"type:text;not null" json:"residence"`
	ApplicationMode    pq.StringArray `gorm:"type:text[]" json:"application_mode"`
	SchemeCategory     pq.StringArray `gorm:"type:text[]" json:"scheme_category"`
	DifferentlyAbled   string         `gorm:"type:text;not null" json:"differently_abled"`
	BenefitType        string         `gorm:"type:text;not null" json:"benefit_type"`
	GovernmentEmployee string         `gorm:"type:text;not null" json:"government_employee"`
	MaritalStatus      string         `gorm:"type:text;not null" json:"marital_status"`
	Level              string         `gorm:"type:text;not null" json:"level"`
	Minority           string         `gorm:"type:text;not null" json:"minority"`
	EmploymentStatus   string         `gorm:"type:text;not null" json:"employment_status"`
}

func (Scheme) TableName() string {
	return "schemes"
}
