package models

import "time"

// Project representa um trabalho acadêmico em andamento (TCC, dissertação...).
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Author      string `json:"author,omitempty"`

	Documents []ThesisDocument `json:"documents,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName define explicitamente o nome da tabela.
func (Project) TableName() string {
	return "projects"
}
