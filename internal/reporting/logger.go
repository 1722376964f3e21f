package reporting

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// LogPriority runs the log subscriber after presentation subscribers
const LogPriority = 1000

// SubscribeLogger logs every cast, auto-fail and check published on bus and
// returns the subscription IDs.
func SubscribeLogger(bus events.EventBus) []string {
	castID := bus.SubscribeFunc(EventSpellCast, LogPriority, func(_ context.Context, e events.Event) error {
		record, ok := CastRecordFrom(e)
		if !ok {
			slog.Warn("Cast event without record", "event_type", e.Type())
			return nil
		}

		attrs := []any{
			"cast_id", record.CastID,
			"actor_id", record.ActorID,
			"spell", spellName(record),
			"is_success", record.IsSuccess,
			"is_critical", record.IsCritical,
			"difficulty", record.Difficulty,
			"total_cost", record.Costs.TotalCost,
			"delivery", record.DeliveryText,
			"targets", len(record.Targets),
		}
		if record.Roll != nil {
			attrs = append(attrs, "roll_total", record.Roll.Total)
		}
		if record.DamageRoll != nil {
			attrs = append(attrs, "damage_total", record.DamageRoll.Total)
		}
		slog.Info("Spell cast", attrs...)
		return nil
	})

	autoFailID := bus.SubscribeFunc(EventSpellAutoFail, LogPriority, func(_ context.Context, e events.Event) error {
		record, ok := AutoFailRecordFrom(e)
		if !ok {
			slog.Warn("Auto-fail event without record", "event_type", e.Type())
			return nil
		}
		slog.Info("Spell auto-failed",
			"actor_id", record.ActorID,
			"spell", record.SpellName,
			"roll_type", record.RollType,
		)
		return nil
	})

	checkID := bus.SubscribeFunc(EventCheck, LogPriority, func(_ context.Context, e events.Event) error {
		record, ok := CheckRecordFrom(e)
		if !ok {
			slog.Warn("Check event without record", "event_type", e.Type())
			return nil
		}

		attrs := []any{
			"actor_id", record.ActorID,
			"kind", string(record.Kind),
			"key", record.Key,
			"difficulty", record.Difficulty,
			"is_success", record.IsSuccess,
		}
		if record.Roll != nil {
			attrs = append(attrs, "roll_total", record.Roll.Total)
		}
		slog.Info("Check rolled", attrs...)
		return nil
	})

	return []string{castID, autoFailID, checkID}
}

func spellName(record *CastRecord) string {
	if record.Spell == nil {
		return ""
	}
	return record.Spell.Name
}
