// services/stats_service.go
package services

import (
	"localpro-backend/models"
	"localpro-backend/realtime"

	"github.com/robfig/cron/v3"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StatsService periodically re-aggregates dashboard counts and broadcasts
// them to the hub, so long-lived clients converge on the store's real counts
// even if they dropped an event.
type StatsService struct {
	db       *gorm.DB
	hub      *realtime.Hub
	cron     *cron.Cron
	schedule string
}

func NewStatsService(db *gorm.DB, hub *realtime.Hub, schedule string) *StatsService {
	return &StatsService{db: db, hub: hub, cron: cron.New(), schedule: schedule}
}

// Start schedules the broadcast. An empty schedule disables the service.
func (s *StatsService) Start() error {
	if s.schedule == "" {
		return nil
	}
	if _, err := s.cron.AddFunc(s.schedule, s.BroadcastStats); err != nil {
		return err
	}
	s.cron.Start()
	zlog.Info().Str("schedule", s.schedule).Msg("stats broadcaster started")
	return nil
}

func (s *StatsService) Stop() {
	s.cron.Stop()
}

// BroadcastStats pushes the current customer count and provider status
// counts to every subscriber.
func (s *StatsService) BroadcastStats() {
	var customerCount int64
	if err := s.db.Model(&models.Customer{}).Count(&customerCount).Error; err != nil {
		zlog.Error().Err(err).Msg("stats customer count")
		return
	}
	s.hub.Broadcast("customerCount", map[string]interface{}{"count": customerCount})

	var total, active, pending int64
	if err := s.db.Model(&models.Provider{}).Count(&total).Error; err != nil {
		zlog.Error().Err(err).Msg("stats provider count")
		return
	}
	s.db.Model(&models.Provider{}).Where("status = ?", "Active").Count(&active)
	s.db.Model(&models.Provider{}).Where("status = ?", "Pending").Count(&pending)

	s.hub.Broadcast("providerStats", map[string]interface{}{
		"totalProviders":   total,
		"activeProviders":  active,
		"pendingProviders": pending,
	})
}
