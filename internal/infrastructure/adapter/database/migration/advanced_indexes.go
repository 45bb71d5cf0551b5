package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []indexStatement{
		{
			// Statements arrive roughly in date order
			name: "idx_bank_transactions_date_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_bank_transactions_date_brin
				ON bank_transactions USING BRIN (transaction_date)
				WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_bank_transactions_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_bank_transactions_created_at_brin
				ON bank_transactions USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
		{
			// Case-insensitive description search
			name: "idx_bank_transactions_description_lower",
			sql: `CREATE INDEX IF NOT EXISTS idx_bank_transactions_description_lower
				ON bank_transactions (LOWER(description) text_pattern_ops)`,
		},
		{
			name: "idx_bank_transactions_manual",
			sql: `CREATE INDEX IF NOT EXISTS idx_bank_transactions_manual
				ON bank_transactions (matched_user_id, matched_at)
				WHERE match_confidence = 'manual'`,
		},
		{
			name: "idx_profile_aliases_lower",
			sql: `CREATE INDEX IF NOT EXISTS idx_profile_aliases_lower
				ON profile_aliases (LOWER(alias))`,
		},
	}

	db := m.db.WithContext(ctx)
	for _, statement := range statements {
		if err := db.Exec(statement.sql).Error; err != nil {
			m.logger.Error("Failed to create advanced index", map[string]any{
				"index": statement.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks. Failures are
// logged and ignored
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)

	// Match fields are rewritten in place on every rerun
	if err := db.Exec(`ALTER TABLE bank_transactions SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for bank_transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE bank_transactions ALTER COLUMN matched_user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for matched_user_id", map[string]any{
			"error": err.Error(),
		})
	}

	// Lock rows churn constantly
	if err := db.Exec(`ALTER TABLE transaction_locks SET (autovacuum_vacuum_scale_factor = 0.05)`).Error; err != nil {
		m.logger.Warn("Failed to tune autovacuum for transaction_locks table", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL performance tweaks applied", nil)
}
