package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/recipe-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  " + helpStyle.Render("ctrl+c: выход"))

	return b.String()
}

func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func stateLabel(state models.SyncState) string {
	switch state {
	case models.SyncOffline:
		return "не подключено"
	case models.SyncIdle:
		return "есть несинхронизированные изменения"
	case models.SyncSyncing:
		return "синхронизация..."
	case models.SyncSynced:
		return "синхронизировано"
	case models.SyncError:
		return "ошибка синхронизации"
	case models.SyncAwaitingReconnect:
		return "сессия истекла — нужен повторный вход"
	default:
		return string(state)
	}
}

func collectionLabel(collection string) string {
	switch collection {
	case models.CollectionRecipes:
		return "Рецепт"
	case models.CollectionMealPlans:
		return "План меню"
	case models.CollectionIngredients:
		return "Ингредиент"
	case models.CollectionGroceryLists:
		return "Список покупок"
	case models.CollectionGroceryItems:
		return "Покупка"
	default:
		return collection
	}
}

func formatWhen(millis int64) string {
	if millis <= 0 {
		return "никогда"
	}
	return time.UnixMilli(millis).Format("02.01.2006 15:04:05")
}

func formatCount(n int, word string) string {
	return fmt.Sprintf("%d %s", n, word)
}
