package models

import "time"

// ReferenceDocument registra um documento exemplar enviado pelo usuário, do
// qual regras do tipo REFERENCE são extraídas. O texto bruto é arquivado no
// S3; as regras derivadas são removidas junto com o documento.
type ReferenceDocument struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name       string `json:"name" gorm:"not null"`
	S3Link     string `json:"s3_link,omitempty" gorm:"type:text"`
	TextLength int    `json:"text_length"`
	RuleCount  int    `json:"rule_count"`

	Rules []Rule `json:"rules,omitempty" gorm:"foreignKey:ReferenceDocumentID;constraint:OnDelete:CASCADE"`
}

// TableName define explicitamente o nome da tabela.
func (ReferenceDocument) TableName() string {
	return "reference_documents"
}
