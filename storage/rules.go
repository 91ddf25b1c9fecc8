package storage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orientador/models"
)

// GormRuleRepository persiste regras no PostgreSQL e implementa a interface
// services.RuleRepository esperada pelo motor de regras.
type GormRuleRepository struct {
	DB *gorm.DB
}

// NewGormRuleRepository cria um novo repositório de regras.
func NewGormRuleRepository(db *gorm.DB) *GormRuleRepository {
	return &GormRuleRepository{DB: db}
}

// Load retorna todas as regras habilitadas, regras de sistema primeiro.
func (r *GormRuleRepository) Load(ctx context.Context) ([]models.Rule, error) {
	var rules []models.Rule
	err := r.DB.WithContext(ctx).
		Where("is_enabled = ?", true).
		Order("type asc, created_at asc").
		Find(&rules).Error
	return rules, err
}

// Save upserts the given rules by primary key.
func (r *GormRuleRepository) Save(ctx context.Context, rules []models.Rule) error {
	if len(rules) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rules).Error
}
