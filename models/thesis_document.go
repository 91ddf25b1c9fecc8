package models

import "time"

// ThesisDocument é um arquivo markdown de um projeto. A análise concatena os
// documentos do projeto na ordem de Position.
type ThesisDocument struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID uint   `json:"project_id" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	Content   string `json:"content" gorm:"type:text"`
	Position  int    `json:"position" gorm:"index;default:0"`
}

// TableName define explicitamente o nome da tabela.
func (ThesisDocument) TableName() string {
	return "thesis_documents"
}
