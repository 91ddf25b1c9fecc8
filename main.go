package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"orientador/config"
	"orientador/models"
	"orientador/services"
	"orientador/storage"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var analysesCompletedCounter prometheus.Counter

func init() {
	analysesCompletedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analyses_completed_total",
			Help: "Total number of completed manuscript analyses.",
		},
	)
	prometheus.MustRegister(analysesCompletedCounter)
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Setup Database Connection
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to database.")

	// Auto-Migration
	if gin.Mode() == gin.DebugMode {
		logging.Info("Debug mode detected. Dropping tables for fresh start.")
		db.Migrator().DropTable(&models.Rule{}, &models.AnalysisRecord{}, &models.ThesisDocument{}, &models.ReferenceDocument{}, &models.Project{})
	}
	logging.Info("Running database auto-migration...")
	db.AutoMigrate(&models.Project{}, &models.ThesisDocument{}, &models.AnalysisRecord{}, &models.ReferenceDocument{}, &models.Rule{})

	// Seeding
	seedSystemRules(db, logging)

	// Setup Services
	s3Client, err := storage.NewS3Client(cfg)
	if err != nil {
		logging.Fatal("S3 client creation failed", zap.Error(err))
	}
	ruleRepo := storage.NewGormRuleRepository(db)
	ruleEngine := services.NewRuleEngine(logging, ruleRepo)
	analyzer := services.NewThesisAnalyzer(logging)
	extractor := services.NewPatternExtractor(logging)
	projectAnalysis := services.NewProjectAnalysisService(db, logging, analyzer)

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(apiKeyAuthMiddleware(cfg))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Routes
	setupAnalysisRoutes(router, analyzer, ruleEngine, logging)
	setupProjectRoutes(router, db, projectAnalysis, logging)
	setupDocumentRoutes(router, db, logging)
	setupRuleRoutes(router, db, logging)
	setupReferenceRoutes(router, db, s3Client, cfg, extractor, logging)

	// Setup Cron
	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.CronSchedule, func() {
		logging.Info("Running scheduled re-analysis job...")
		count, err := projectAnalysis.RunPending(context.Background())
		if err != nil {
			logging.Error("Cron job failed", zap.Error(err))
		} else {
			logging.Info("Cron job completed", zap.Int("projects_analyzed", count))
			analysesCompletedCounter.Add(float64(count))
		}
	})
	cronScheduler.Start()

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

// setupAnalysisRoutes configura as rotas de análise direta (sem persistência)
func setupAnalysisRoutes(router *gin.Engine, analyzer *services.ThesisAnalyzer, engine *services.RuleEngine, log *zap.Logger) {
	rg := router.Group("/analysis")

	// POST - Analisa um manuscrito completo e devolve o relatório por seção
	rg.POST("/analyze", func(c *gin.Context) {
		var request struct {
			Content string `json:"content" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			log.Error("Invalid request body for analysis", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. 'content' field is required."})
			return
		}

		if len(request.Content) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
			return
		}

		log.Info("Starting manuscript analysis",
			zap.Int("content_length", len(request.Content)))

		result := analyzer.Analyze(c.Request.Context(), request.Content)
		analysesCompletedCounter.Inc()

		c.JSON(http.StatusOK, result)
	})

	// POST - Classifica e analisa uma seção isolada
	rg.POST("/section", func(c *gin.Context) {
		var request struct {
			Content string `json:"content" binding:"required"`
			Section string `json:"section"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. 'content' field is required."})
			return
		}

		section := services.SectionType(request.Section)
		if section == "" {
			detected, ok := services.ClassifySection(request.Content)
			if !ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not classify section; pass 'section' explicitly"})
				return
			}
			section = detected
		}

		checklist := services.BuildChecklist(section, request.Content)
		feedback := services.BuildFeedback(section, request.Content, checklist)
		c.JSON(http.StatusOK, feedback)
	})

	// POST - Avalia as regras persistidas (mais regras ad-hoc) contra um texto
	rg.POST("/evaluate-rules", func(c *gin.Context) {
		var request struct {
			Content string        `json:"content" binding:"required"`
			Section string        `json:"section"`
			Rules   []models.Rule `json:"rules"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. 'content' field is required."})
			return
		}

		stored, err := engine.Repo.Load(c.Request.Context())
		if err != nil {
			log.Error("Failed to load rules", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rules"})
			return
		}
		rules := append(stored, request.Rules...)

		analysis := engine.EvaluateRules(request.Content, services.SectionType(request.Section), rules)
		c.JSON(http.StatusOK, analysis)
	})
}

func setupProjectRoutes(router *gin.Engine, db *gorm.DB, projectAnalysis *services.ProjectAnalysisService, log *zap.Logger) {
	rg := router.Group("/projects")

	rg.POST("/", func(c *gin.Context) {
		var project models.Project
		if err := c.ShouldBindJSON(&project); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if err := db.Create(&project).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
			return
		}
		c.JSON(http.StatusCreated, project)
	})

	rg.GET("/", func(c *gin.Context) {
		var projects []models.Project
		if err := db.Find(&projects).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, projects)
	})

	rg.GET("/:id", func(c *gin.Context) {
		id := c.Param("id")
		var project models.Project
		if err := db.Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		}).First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			log.Error("DB error loading project", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, project)
	})

	rg.PUT("/:id", func(c *gin.Context) {
		id := c.Param("id")
		var project models.Project
		if err := db.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		// Binda apenas os campos enviados para evitar sobrescrita
		var updateData map[string]interface{}
		if err := c.ShouldBindJSON(&updateData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := db.Model(&project).Updates(updateData).Error; err != nil {
			log.Error("DB error updating project", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
			return
		}
		c.JSON(http.StatusOK, project)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		id := c.Param("id")
		if err := db.Delete(&models.Project{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	// POST - Executa a análise do projeto e persiste o snapshot
	rg.POST("/:id/analyze", func(c *gin.Context) {
		id := c.Param("id")
		var project models.Project
		if err := db.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		record, analysis, err := projectAnalysis.AnalyzeProject(c.Request.Context(), project.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
			return
		}
		analysesCompletedCounter.Inc()

		c.JSON(http.StatusOK, gin.H{
			"record_id": record.ID,
			"analysis":  analysis,
		})
	})

	rg.GET("/:id/analyses", func(c *gin.Context) {
		id := c.Param("id")
		var records []models.AnalysisRecord
		if err := db.Where("project_id = ?", id).
			Order("created_at desc").
			Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, records)
	})
}

func setupDocumentRoutes(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	rg := router.Group("/projects/:id/documents")

	rg.POST("/", func(c *gin.Context) {
		id := c.Param("id")
		var project models.Project
		if err := db.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		var doc models.ThesisDocument
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		doc.ProjectID = project.ID
		if err := db.Create(&doc).Error; err != nil {
			log.Error("DB error creating document", zap.String("project_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create document"})
			return
		}
		c.JSON(http.StatusCreated, doc)
	})

	rg.GET("/", func(c *gin.Context) {
		id := c.Param("id")
		var docs []models.ThesisDocument
		if err := db.Where("project_id = ?", id).
			Order("position asc, id asc").
			Find(&docs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, docs)
	})

	rg.PUT("/:docID", func(c *gin.Context) {
		id := c.Param("id")
		docID := c.Param("docID")
		var doc models.ThesisDocument
		if err := db.Where("project_id = ?", id).First(&doc, docID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		var updateData map[string]interface{}
		if err := c.ShouldBindJSON(&updateData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		delete(updateData, "project_id")
		if err := db.Model(&doc).Updates(updateData).Error; err != nil {
			log.Error("DB error updating document", zap.String("id", docID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update document"})
			return
		}
		c.JSON(http.StatusOK, doc)
	})

	rg.DELETE("/:docID", func(c *gin.Context) {
		id := c.Param("id")
		docID := c.Param("docID")
		if err := db.Where("project_id = ?", id).Delete(&models.ThesisDocument{}, docID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete document"})
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// setupRuleRoutes configura o CRUD de regras. Regras built-in são imutáveis.
func setupRuleRoutes(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	rg := router.Group("/rules")

	rg.GET("/", func(c *gin.Context) {
		query := db.Model(&models.Rule{})
		if t := c.Query("type"); t != "" {
			query = query.Where("type = ?", t)
		}
		if s := c.Query("section"); s != "" {
			query = query.Where("section = ?", s)
		}

		var rules []models.Rule
		if err := query.Order("created_at asc").Find(&rules).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, rules)
	})

	rg.POST("/", func(c *gin.Context) {
		var rule models.Rule
		if err := c.ShouldBindJSON(&rule); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if rule.Name == "" || rule.Pattern == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "'name' and 'pattern' are required"})
			return
		}
		if err := services.ValidatePattern(rule.Pattern); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid pattern: %v", err)})
			return
		}

		// Regras criadas pela API são sempre regras de usuário
		rule.ID = ""
		rule.Type = models.TypeUser
		rule.IsBuiltIn = false
		rule.ReferenceDocumentID = nil
		if rule.Category == "" {
			rule.Category = models.CategoryContent
		}
		if rule.Severity == "" {
			rule.Severity = models.SeverityInfo
		}

		if err := db.Create(&rule).Error; err != nil {
			log.Error("DB error creating rule", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create rule"})
			return
		}
		c.JSON(http.StatusCreated, rule)
	})

	rg.PUT("/:id", func(c *gin.Context) {
		id := c.Param("id")
		var rule models.Rule
		if err := db.Where("id = ?", id).First(&rule).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "rule not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		if rule.IsBuiltIn {
			c.JSON(http.StatusForbidden, gin.H{"error": "built-in rules cannot be modified"})
			return
		}

		var updateData map[string]interface{}
		if err := c.ShouldBindJSON(&updateData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if pattern, ok := updateData["pattern"].(string); ok {
			if err := services.ValidatePattern(pattern); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid pattern: %v", err)})
				return
			}
		}
		delete(updateData, "id")
		delete(updateData, "type")
		delete(updateData, "is_built_in")
		delete(updateData, "reference_document_id")

		if err := db.Model(&rule).Updates(updateData).Error; err != nil {
			log.Error("DB error updating rule", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update rule"})
			return
		}
		c.JSON(http.StatusOK, rule)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		id := c.Param("id")
		var rule models.Rule
		if err := db.Where("id = ?", id).First(&rule).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "rule not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		if rule.IsBuiltIn {
			c.JSON(http.StatusForbidden, gin.H{"error": "built-in rules cannot be deleted"})
			return
		}
		if err := db.Delete(&rule).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete rule"})
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// setupReferenceRoutes configura o upload de documentos de referência: o texto
// é arquivado no S3 e os padrões extraídos viram regras REFERENCE.
func setupReferenceRoutes(router *gin.Engine, db *gorm.DB, s3Client *s3.Client, cfg *config.Config, extractor *services.PatternExtractor, log *zap.Logger) {
	rg := router.Group("/reference-documents")

	rg.POST("/", func(c *gin.Context) {
		var request struct {
			Name    string `json:"name" binding:"required"`
			Content string `json:"content" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. 'name' and 'content' fields are required."})
			return
		}

		ref := models.ReferenceDocument{
			Name:       request.Name,
			TextLength: len(request.Content),
		}
		if err := db.Create(&ref).Error; err != nil {
			log.Error("DB error creating reference document", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reference document"})
			return
		}

		key := fmt.Sprintf("references/%d.txt", ref.ID)
		link, err := storage.UploadReferenceText(c.Request.Context(), s3Client, cfg, key, request.Content)
		if err != nil {
			// O arquivamento não pode bloquear a extração de padrões
			log.Warn("Failed to archive reference text", zap.Uint("id", ref.ID), zap.Error(err))
		} else {
			ref.S3Link = link
		}

		patterns := extractor.ExtractPatterns(request.Content)
		rules := make([]models.Rule, 0, len(patterns))
		for _, p := range patterns {
			rules = append(rules, models.Rule{
				Name:                p.Name,
				Description:         p.Description,
				Category:            p.Category,
				Type:                models.TypeReference,
				Pattern:             p.Pattern,
				Section:             string(p.Section),
				Severity:            p.Severity,
				Weight:              p.Weight,
				IsEnabled:           true,
				ReferenceDocumentID: &ref.ID,
			})
		}
		if len(rules) > 0 {
			if err := db.Create(&rules).Error; err != nil {
				log.Error("DB error persisting extracted rules", zap.Uint("id", ref.ID), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist extracted rules"})
				return
			}
		}

		ref.RuleCount = len(rules)
		if err := db.Save(&ref).Error; err != nil {
			log.Error("DB error updating reference document", zap.Uint("id", ref.ID), zap.Error(err))
		}

		log.Info("Reference document processed",
			zap.Uint("id", ref.ID),
			zap.Int("text_length", ref.TextLength),
			zap.Int("rules", len(rules)))

		c.JSON(http.StatusCreated, gin.H{
			"reference_document": ref,
			"rules":              rules,
		})
	})

	rg.GET("/", func(c *gin.Context) {
		var refs []models.ReferenceDocument
		if err := db.Find(&refs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, refs)
	})

	rg.GET("/:id", func(c *gin.Context) {
		id := c.Param("id")
		var ref models.ReferenceDocument
		if err := db.Preload("Rules").First(&ref, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "reference document not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, ref)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		id := c.Param("id")
		var ref models.ReferenceDocument
		if err := db.First(&ref, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "reference document not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		// As regras derivadas caem junto com o documento
		if err := db.Where("reference_document_id = ?", ref.ID).Delete(&models.Rule{}).Error; err != nil {
			log.Error("DB error deleting derived rules", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete derived rules"})
			return
		}
		if err := db.Delete(&ref).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete reference document"})
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func seedSystemRules(db *gorm.DB, logger *zap.Logger) {
	var count int64
	db.Model(&models.Rule{}).Where("type = ?", models.TypeSystem).Count(&count)
	if count > 0 {
		return
	}
	rules := []models.Rule{
		{
			Name:        "Objetivo geral declarado",
			Description: "A introdução deve declarar o objetivo geral do trabalho.",
			Category:    models.CategoryContent,
			Type:        models.TypeSystem,
			Pattern:     `objetivo\s+geral|tem\s+como\s+objetivo|o\s+presente\s+trabalho\s+(visa|busca|objetiva)`,
			Section:     "introduction",
			Severity:    models.SeverityError,
			Weight:      3,
			IsEnabled:   true,
			IsBuiltIn:   true,
		},
		{
			Name:        "Problema de pesquisa formulado",
			Description: "A introdução deve formular o problema ou a pergunta de pesquisa.",
			Category:    models.CategoryContent,
			Type:        models.TypeSystem,
			Pattern:     `problema\s+de\s+pesquisa|quest[aã]o\s+(de\s+pesquisa|norteadora)|pergunta\s+de\s+pesquisa`,
			Section:     "introduction",
			Severity:    models.SeverityError,
			Weight:      3,
			IsEnabled:   true,
			IsBuiltIn:   true,
		},
		{
			Name:        "Citações presentes",
			Description: "O texto deve conter citações em algum formato reconhecido.",
			Category:    models.CategoryCitation,
			Type:        models.TypeSystem,
			Pattern:     `\([A-ZÀ-Ü][^()\d]*,\s*\d{4}[a-z]?\)|\[@[^\]\s]+\]|\[\d{1,3}\]`,
			Severity:    models.SeverityWarning,
			Weight:      2,
			IsEnabled:   true,
			IsBuiltIn:   true,
		},
		{
			Name:        "Tipo de pesquisa caracterizado",
			Description: "A metodologia deve caracterizar o tipo de pesquisa.",
			Category:    models.CategoryContent,
			Type:        models.TypeSystem,
			Pattern:     `pesquisa\s+(qualitativa|quantitativa|mista|explorat[óo]ria|descritiva|explicativa)|estudo\s+de\s+caso`,
			Section:     "methodology",
			Severity:    models.SeverityWarning,
			Weight:      2,
			IsEnabled:   true,
			IsBuiltIn:   true,
		},
		{
			Name:        "Conclusão retoma os objetivos",
			Description: "A conclusão deve retomar os objetivos propostos.",
			Category:    models.CategoryContent,
			Type:        models.TypeSystem,
			Pattern:     `objetivo[s]?\s+(proposto|alcan[çc]ado|atingido)|retoma[nr]do\s+o[s]?\s+objetivo`,
			Section:     "conclusion",
			Severity:    models.SeverityWarning,
			Weight:      2,
			IsEnabled:   true,
			IsBuiltIn:   true,
		},
	}
	if err := db.Create(&rules).Error; err != nil {
		logger.Warn("Failed to seed system rules", zap.Error(err))
	} else {
		logger.Info("System rules seeded.")
	}
}
