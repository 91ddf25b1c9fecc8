package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleCategory classifica o que uma regra verifica.
type RuleCategory string

const (
	CategoryStructure RuleCategory = "STRUCTURE"
	CategoryContent   RuleCategory = "CONTENT"
	CategoryCitation  RuleCategory = "CITATION"
	CategoryStyle     RuleCategory = "STYLE"
)

// RuleType indica a origem de uma regra.
type RuleType string

const (
	TypeSystem    RuleType = "SYSTEM"
	TypeUser      RuleType = "USER"
	TypeReference RuleType = "REFERENCE"
)

// RuleSeverity pesa a importância de uma regra na exibição.
type RuleSeverity string

const (
	SeverityError   RuleSeverity = "ERROR"
	SeverityWarning RuleSeverity = "WARNING"
	SeverityInfo    RuleSeverity = "INFO"
)

// Rule is a regex-based check evaluated against document content. System
// rules are immutable seed data; user rules are managed over the API;
// reference rules are derived from an uploaded reference document and deleted
// with it. An empty Section means the rule applies globally.
type Rule struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description" gorm:"type:text"`
	Category    RuleCategory `json:"category" gorm:"index;not null"`
	Type        RuleType     `json:"type" gorm:"index;not null"`
	Pattern     string       `json:"pattern" gorm:"type:text;not null"`
	Section     string       `json:"section" gorm:"index"` // empty = global
	Severity    RuleSeverity `json:"severity" gorm:"default:'INFO'"`
	Weight      int          `json:"weight" gorm:"default:1"`
	IsEnabled   bool         `json:"is_enabled" gorm:"default:true"`
	IsBuiltIn   bool         `json:"is_built_in" gorm:"default:false"`

	// Dona da regra quando Type == REFERENCE
	ReferenceDocumentID *uint `json:"reference_document_id,omitempty" gorm:"index"`
}

// TableName define explicitamente o nome da tabela.
func (Rule) TableName() string {
	return "rules"
}

// BeforeCreate garante um ID estável para regras criadas sem um.
func (r *Rule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
