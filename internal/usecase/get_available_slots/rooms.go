package get_available_slots

import (
	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// resolveRooms подбирает комнаты под набор процедур в одном окне.
//
// Процедуры обходятся по порядку:
//   - если все комнаты процедуры заняты записями, окно не подходит;
//   - если комнаты процедуры не пересекаются с уже выбранными, добавляются все её комнаты;
//   - иначе процедура делит уже выбранный пул и ничего не добавляет.
//
// Это эвристика пулов, а не поиск паросочетания: при частичном пересечении пулов
// трех и более процедур результат может отличаться от оптимального.
func resolveRooms(treatments []domain.Treatment, committed idSet) ([]string, bool) {
	claimed := newIDSet()

	for _, t := range treatments {
		if committed.HasAll(t.RoomIDs) {
			return nil, false
		}

		if !claimed.HasAny(t.RoomIDs) {
			claimed = claimed.With(t.RoomIDs...)
		}
	}

	if claimed.Len() == 0 {
		return nil, false
	}

	return claimed.Slice(), true
}
