package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.cohorts (
//     id                      TEXT PRIMARY KEY,
//     name                    TEXT,
//     size                    BIGINT,
//     risk_score              NUMERIC,
//     projected_churners_30d  BIGINT,
//     financial_impact_30d    NUMERIC,
//     attributes              JSONB,
//     created_at              TIMESTAMPTZ DEFAULT NOW()
// );

type Cohort struct {
	ID                   string            `json:"id" gorm:"primaryKey;type:text"`
	Name                 string            `json:"name" gorm:"column:name;type:text"`
	Size                 int               `json:"size" gorm:"column:size"`
	RiskScore            float64           `json:"risk_score" gorm:"column:risk_score;type:numeric"`
	ProjectedChurners30d int               `json:"projected_churners_30d" gorm:"column:projected_churners_30d"`
	FinancialImpact30d   float64           `json:"financial_impact_30d" gorm:"column:financial_impact_30d;type:numeric"`
	Attributes           datatypes.JSONMap `json:"attributes" gorm:"column:attributes;type:jsonb"`
	PrimaryDriver        string            `json:"primary_driver,omitempty" gorm:"-"`
	CreatedAt            time.Time         `json:"created_at" gorm:"column:created_at"`
}

func (Cohort) TableName() string {
	return "cohorts"
}

// AttributeSet flattens the attribute map into "key=value" pairs so two
// entities can be compared regardless of which keys they carry.
func (c Cohort) AttributeSet() map[string]struct{} {
	return attributeSet(c.Attributes)
}

func attributeSet(attrs datatypes.JSONMap) map[string]struct{} {
	set := make(map[string]struct{}, len(attrs))
	for k, v := range attrs {
		if s, ok := v.(string); ok && s != "" {
			set[k+"="+s] = struct{}{}
		}
	}
	return set
}
