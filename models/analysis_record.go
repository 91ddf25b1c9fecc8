package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnalysisRecord é o snapshot persistido de uma análise de projeto. O
// resultado completo (seções, checklists, feedback) é gravado como JSONB; a
// análise em si nunca é mutada depois de criada.
type AnalysisRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	ProjectID    uint           `json:"project_id" gorm:"index;not null"`
	OverallScore int            `json:"overall_score"`
	SectionCount int            `json:"section_count"`
	Result       datatypes.JSON `json:"result" gorm:"type:jsonb"`
}

// TableName define explicitamente o nome da tabela.
func (AnalysisRecord) TableName() string {
	return "analysis_records"
}
