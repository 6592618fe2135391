package rep

import (
	"github.com/pable/go-screp-view/internal/model"
	"github.com/pable/go-screp-view/internal/scdata"
)

// buildChat projects raw chat commands onto the display timeline. Frame
// numbers become elapsed milliseconds for the match's speed, and the sender
// is resolved by slot.
//
// Input order is preserved: chat commands arrive frame-ascending from the
// parser, and no re-sort is applied. Commands whose sender slot is unknown
// are dropped rather than guessed at.
func buildChat(chatCmds []model.RawChatCmd, players []model.Player, matchSpeed string) []model.ChatEntry {
	if len(chatCmds) == 0 {
		return nil
	}

	bySlot := make(map[int]model.Player, len(players))
	for _, p := range players {
		bySlot[p.Slot] = p
	}

	entries := make([]model.ChatEntry, 0, len(chatCmds))
	for _, cmd := range chatCmds {
		sender, ok := bySlot[cmd.SenderSlotID]
		if !ok {
			continue
		}
		timeMs := scdata.FramesToMs(cmd.Frame, matchSpeed)
		entries = append(entries, model.ChatEntry{
			TimeMs:        timeMs,
			TimeFormatted: scdata.FormatDuration(timeMs),
			SenderName:    sender.Name,
			SenderColor:   sender.ColorSwatch,
			SenderRace:    sender.Race,
			Message:       cmd.Message,
		})
	}
	return entries
}
