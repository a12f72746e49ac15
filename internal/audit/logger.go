package audit

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/barbertime/agenda-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID *uint,
	requestID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		RequestID: requestID,
		Metadata:  metaJSON,
	}

	return l.db.Create(&log).Error
}

// Prune apaga registros mais antigos que a janela de retenção;
// roda pelo cron noturno
func (l *Logger) Prune(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	res := l.db.
		Where("created_at < ?", cutoff).
		Delete(&models.AuditLog{})

	return res.RowsAffected, res.Error
}
