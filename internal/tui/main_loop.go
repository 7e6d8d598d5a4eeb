// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenConnect screen = iota
	screenPicker
	screenNewFile
	screenMain
	screenConflicts
	screenAddPick
	screenAddName
)

type recordRow struct {
	collection string
	rec        models.Record
}

type pickerEntry struct {
	isFolder bool
	folder   models.FolderRef
	file     models.RemoteFileRef
}

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	store    store.LocalStore

	screen    screen
	indicator syncIndicator
	syncing   bool
	status    string
	errMsg    string

	tokenInput textinput.Model
	nameInput  textinput.Model

	pickerEntries []pickerEntry
	pickerIdx     int

	rows []recordRow
	idx  int

	conflicts []models.Conflict

	addCollectionIdx int
	editTarget       *recordRow

	quitByUser bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, localStore store.LocalStore) mainLoopModel {
	token := textinput.New()
	token.Placeholder = "токен доступа к диску"
	token.Width = 54
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '*'
	token.Focus()

	name := textinput.New()
	name.Width = 40

	return mainLoopModel{
		ctx:        ctx,
		services:   services,
		store:      localStore,
		screen:     screenConnect,
		indicator:  newSyncIndicator(),
		tokenInput: token,
		nameInput:  name,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdStatusTick())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectDoneMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось подключиться: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Вошли как " + msg.account.Email
		if m.services.SyncService.RemoteFile().Name != "" {
			// файл уже выбран в прошлой сессии — сразу на главный экран
			m.screen = screenMain
			m.syncing = true
			return m, tea.Batch(m.indicator.spinner.Tick, m.cmdSync())
		}
		m.screen = screenPicker
		return m, m.cmdListFolder("")

	case folderLoadedMsg:
		if msg.err != nil {
			m.errMsg = "Ошибка чтения папки: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.pickerEntries = buildPickerEntries(msg.listing)
		m.pickerIdx = 0
		return m, nil

	case fileSelectedMsg:
		m.syncing = false
		return m.afterSync(msg.err)

	case syncDoneMsg:
		m.syncing = false
		return m.afterSync(msg.err)

	case resolveDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = "Ошибка разрешения конфликтов: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Конфликты разрешены"
		m.conflicts = nil
		m.screen = screenMain
		return m, m.cmdLoadRecords()

	case recordsLoadedMsg:
		if msg.err != nil {
			m.errMsg = "Ошибка чтения кэша: " + msg.err.Error()
			return m, nil
		}
		m.rows = msg.rows
		if m.idx >= len(m.rows) {
			m.idx = len(m.rows) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case recordSavedMsg:
		if msg.err != nil {
			m.errMsg = "Ошибка сохранения: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Запись сохранена"
		m.screen = screenMain
		m.editTarget = nil
		return m, m.cmdLoadRecords()

	case recordDeletedMsg:
		if msg.err != nil {
			m.errMsg = "Ошибка удаления: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Запись удалена"
		return m, m.cmdLoadRecords()

	case disconnectDoneMsg:
		if msg.err != nil {
			m.errMsg = "Ошибка отключения: " + msg.err.Error()
			return m, nil
		}
		return m, tea.Quit

	case statusTickMsg:
		// фоновые циклы планировщика меняют состояние без участия TUI
		if m.screen == screenMain && !m.syncing {
			if conflicts := m.services.SyncService.Conflicts(); len(conflicts) > 0 {
				m.conflicts = conflicts
			}
		}
		return m, m.cmdStatusTick()
	}

	if _, ok := msg.(tea.KeyMsg); !ok {
		if m.syncing {
			var cmd tea.Cmd
			m.indicator.spinner, cmd = m.indicator.spinner.Update(msg)
			return m, cmd
		}
		return m.updateInputs(msg)
	}

	keyMsg := msg.(tea.KeyMsg)
	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenConnect:
		return m.updateConnect(keyMsg)
	case screenPicker:
		return m.updatePicker(keyMsg)
	case screenNewFile:
		return m.updateNewFile(keyMsg)
	case screenMain:
		return m.updateMain(keyMsg)
	case screenConflicts:
		return m.updateConflicts(keyMsg)
	case screenAddPick:
		return m.updateAddPick(keyMsg)
	case screenAddName:
		return m.updateAddName(keyMsg)
	}
	return m, nil
}

// afterSync maps the outcome of a sync cycle onto the UI.
func (m mainLoopModel) afterSync(err error) (tea.Model, tea.Cmd) {
	switch {
	case err == nil:
		m.errMsg = ""
		m.status = "Синхронизация завершена"
		m.screen = screenMain
		return m, m.cmdLoadRecords()

	case errors.Is(err, service.ErrConflictsPending):
		m.errMsg = ""
		m.status = ""
		m.conflicts = m.services.SyncService.Conflicts()
		m.screen = screenConflicts
		return m, nil

	case errors.Is(err, service.ErrAwaitingReconnect):
		m.errMsg = "Сессия истекла. Введите новый токен"
		m.screen = screenConnect
		m.tokenInput.SetValue("")
		m.tokenInput.Focus()
		return m, nil

	case errors.Is(err, service.ErrSyncInProgress):
		m.status = "Синхронизация уже идёт"
		m.screen = screenMain
		return m, nil

	default:
		m.errMsg = syncErrorMessage(err)
		m.screen = screenMain
		return m, m.cmdLoadRecords()
	}
}

func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenConnect:
		m.tokenInput, cmd = m.tokenInput.Update(msg)
	case screenNewFile, screenAddName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

// ── Подключение ──────────────────────────────────────────────────────────────

func (m mainLoopModel) updateConnect(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "enter":
		token := strings.TrimSpace(m.tokenInput.Value())
		if token == "" {
			m.errMsg = "Токен не может быть пустым"
			return m, nil
		}
		m.errMsg = ""
		m.status = "Подключение..."
		return m, m.cmdConnect(token)
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.tokenInput, cmd = m.tokenInput.Update(keyMsg)
	return m, cmd
}

// ── Выбор файла ──────────────────────────────────────────────────────────────

func buildPickerEntries(listing models.FolderListing) []pickerEntry {
	entries := make([]pickerEntry, 0, len(listing.Folders)+len(listing.Files))
	for _, f := range listing.Folders {
		entries = append(entries, pickerEntry{isFolder: true, folder: f})
	}
	for _, f := range listing.Files {
		entries = append(entries, pickerEntry{file: f})
	}
	return entries
}

func (m mainLoopModel) updatePicker(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "up":
		if m.pickerIdx > 0 {
			m.pickerIdx--
		}
	case "down":
		if m.pickerIdx < len(m.pickerEntries)-1 {
			m.pickerIdx++
		}
	case "enter":
		if m.pickerIdx >= len(m.pickerEntries) {
			return m, nil
		}
		entry := m.pickerEntries[m.pickerIdx]
		if entry.isFolder {
			return m, m.cmdListFolder(entry.folder.ID)
		}
		// существующий файл: локальный кэш будет заменён содержимым диска
		m.syncing = true
		m.status = ""
		return m, tea.Batch(m.indicator.spinner.Tick, m.cmdSelectFile(entry.file, false))
	case "backspace":
		return m, m.cmdListFolder("")
	case "n":
		m.nameInput.SetValue("")
		m.nameInput.Placeholder = "имя нового файла"
		m.nameInput.Focus()
		m.errMsg = ""
		m.screen = screenNewFile
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) updateNewFile(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenPicker
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.errMsg = "Нужно имя файла"
			return m, nil
		}
		if !strings.HasSuffix(name, models.SnapshotFileSuffix) {
			name += models.SnapshotFileSuffix
		}
		ref := models.RemoteFileRef{Name: name, Path: "/" + name}
		m.errMsg = ""
		m.syncing = true
		// новый файл: локальные данные уедут в первый аплоад
		return m, tea.Batch(m.indicator.spinner.Tick, m.cmdSelectFile(ref, true))
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(keyMsg)
	return m, cmd
}

// ── Главный экран ────────────────────────────────────────────────────────────

func (m mainLoopModel) updateMain(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up":
		if m.idx > 0 {
			m.idx--
		}
	case "down":
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case "a":
		m.addCollectionIdx = 0
		m.editTarget = nil
		m.screen = screenAddPick
		return m, nil
	case "e":
		if m.idx >= len(m.rows) {
			m.status = "Нет записей"
			return m, nil
		}
		row := m.rows[m.idx]
		m.editTarget = &row
		m.nameInput.SetValue(row.rec.DisplayName())
		m.nameInput.Placeholder = "название"
		m.nameInput.Focus()
		m.screen = screenAddName
		return m, nil
	case "ctrl+d":
		if m.idx >= len(m.rows) {
			m.status = "Нет записей"
			return m, nil
		}
		row := m.rows[m.idx]
		return m, m.cmdDeleteRecord(row.collection, row.rec.ID)
	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = ""
		m.errMsg = ""
		return m, tea.Batch(m.indicator.spinner.Tick, m.cmdSync())
	case "r":
		if len(m.conflicts) == 0 {
			m.status = "Конфликтов нет"
			return m, nil
		}
		m.screen = screenConflicts
		return m, nil
	case "c":
		url := m.services.SyncService.RemoteFile().ShareURL
		if url == "" {
			m.status = "Ссылки для общего доступа нет"
			return m, nil
		}
		if err := clipboard.WriteAll(url); err != nil {
			m.errMsg = "Ошибка копирования: " + err.Error()
			return m, nil
		}
		m.status = "Ссылка скопирована"
	case "x":
		return m, m.cmdDisconnect()
	}
	return m, nil
}

// ── Конфликты ────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateConflicts(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenMain
		return m, nil
	case "l":
		m.syncing = true
		return m, tea.Batch(m.indicator.spinner.Tick, m.cmdResolve(models.ResolveLocal))
	case "r":
		m.syncing = true
		return m, tea.Batch(m.indicator.spinner.Tick, m.cmdResolve(models.ResolveRemote))
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// ── Добавление записи ────────────────────────────────────────────────────────

func (m mainLoopModel) updateAddPick(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	collections := models.CollectionNames()
	switch keyMsg.String() {
	case "esc":
		m.screen = screenMain
		return m, nil
	case "up":
		if m.addCollectionIdx > 0 {
			m.addCollectionIdx--
		}
	case "down":
		if m.addCollectionIdx < len(collections)-1 {
			m.addCollectionIdx++
		}
	case "1", "2", "3", "4", "5":
		m.addCollectionIdx = int(keyMsg.String()[0] - '1')
		fallthrough
	case "enter":
		m.nameInput.SetValue("")
		m.nameInput.Placeholder = "название"
		m.nameInput.Focus()
		m.errMsg = ""
		m.screen = screenAddName
		return m, nil
	}
	return m, nil
}

func (m mainLoopModel) updateAddName(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenMain
		m.editTarget = nil
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.errMsg = "Название обязательно"
			return m, nil
		}
		m.errMsg = ""

		if m.editTarget != nil {
			rec := m.editTarget.rec
			if rec.Fields == nil {
				rec.Fields = map[string]any{}
			}
			rec.Fields["name"] = name
			rec.UpdatedAt = time.Now().UnixMilli()
			return m, m.cmdSaveRecord(m.editTarget.collection, rec)
		}

		collection := models.CollectionNames()[m.addCollectionIdx]
		rec := models.Record{Fields: map[string]any{"name": name}}
		return m, m.cmdSaveRecord(collection, rec)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(keyMsg)
	return m, cmd
}

// ── Команды ──────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdConnect(token string) tea.Cmd {
	ctx, svc := m.ctx, m.services.SyncService
	return func() tea.Msg {
		// после истечения сессии токен меняется через NotifyReauthenticated,
		// чтобы движок сразу догнал пропущенные изменения
		if svc.State() == models.SyncAwaitingReconnect {
			err := svc.NotifyReauthenticated(ctx, token)
			switch {
			case err == nil,
				errors.Is(err, service.ErrConflictsPending),
				errors.Is(err, service.ErrSyncInProgress),
				errors.Is(err, service.ErrNotConnected):
				// вход удался; исход догоняющей синхронизации покажет
				// главный экран
				return connectDoneMsg{account: svc.Account()}
			default:
				return connectDoneMsg{err: err}
			}
		}
		account, err := svc.Connect(ctx, token)
		return connectDoneMsg{account: account, err: err}
	}
}

func (m mainLoopModel) cmdListFolder(parentID string) tea.Cmd {
	ctx, svc := m.ctx, m.services.SyncService
	return func() tea.Msg {
		listing, err := svc.ListRemoteFolder(ctx, parentID)
		return folderLoadedMsg{listing: listing, err: err}
	}
}

func (m mainLoopModel) cmdSelectFile(ref models.RemoteFileRef, isNew bool) tea.Cmd {
	ctx, svc := m.ctx, m.services.SyncService
	return func() tea.Msg {
		return fileSelectedMsg{err: svc.SelectRemoteFile(ctx, ref, isNew)}
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx, svc := m.ctx, m.services.SyncService
	return func() tea.Msg {
		return syncDoneMsg{err: svc.PerformSync(ctx)}
	}
}

func (m mainLoopModel) cmdResolve(direction models.ResolveDirection) tea.Cmd {
	ctx, svc := m.ctx, m.services.SyncService
	return func() tea.Msg {
		return resolveDoneMsg{err: svc.ResolveConflicts(ctx, direction)}
	}
}

func (m mainLoopModel) cmdLoadRecords() tea.Cmd {
	ctx, localStore := m.ctx, m.store
	return func() tea.Msg {
		snapshot, err := localStore.GetSnapshot(ctx)
		if err != nil {
			return recordsLoadedMsg{err: err}
		}

		var rows []recordRow
		for _, collection := range models.CollectionNames() {
			for _, rec := range snapshot.Collections[collection] {
				if rec.Deleted {
					continue
				}
				rows = append(rows, recordRow{collection: collection, rec: rec})
			}
		}
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].collection != rows[j].collection {
				return rows[i].collection < rows[j].collection
			}
			return rows[i].rec.DisplayName() < rows[j].rec.DisplayName()
		})
		return recordsLoadedMsg{rows: rows}
	}
}

func (m mainLoopModel) cmdSaveRecord(collection string, rec models.Record) tea.Cmd {
	ctx, localStore := m.ctx, m.store
	return func() tea.Msg {
		_, err := localStore.SaveRecord(ctx, collection, rec)
		return recordSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteRecord(collection, id string) tea.Cmd {
	ctx, localStore := m.ctx, m.store
	return func() tea.Msg {
		err := localStore.DeleteRecord(ctx, collection, id, time.Now().UnixMilli())
		return recordDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDisconnect() tea.Cmd {
	ctx, svc := m.ctx, m.services.SyncService
	return func() tea.Msg {
		return disconnectDoneMsg{err: svc.DisconnectAndReset(ctx)}
	}
}

func (m mainLoopModel) cmdStatusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

// ── Отрисовка ────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenConnect:
		return m.viewConnect()
	case screenPicker:
		return m.viewPicker()
	case screenNewFile:
		return m.viewNewFile()
	case screenConflicts:
		return m.viewConflicts()
	case screenAddPick:
		return m.viewAddPick()
	case screenAddName:
		return m.viewAddName()
	default:
		return m.viewMain()
	}
}

func (m mainLoopModel) viewConnect() string {
	out := "Токен     : [ " + m.tokenInput.View() + " ]\n"
	if m.status != "" {
		out += "\nСтатус: " + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	return renderPage("ПОДКЛЮЧЕНИЕ К ДИСКУ", strings.TrimRight(out, "\n"), "enter: войти │ q: выход")
}

func (m mainLoopModel) viewPicker() string {
	out := ""
	if len(m.pickerEntries) == 0 {
		out += "Папка пуста\n"
	}
	for i, entry := range m.pickerEntries {
		cursor := " "
		if i == m.pickerIdx {
			cursor = ">"
		}
		if entry.isFolder {
			out += fmt.Sprintf("%s 📁 %s\n", cursor, entry.folder.Path)
		} else {
			out += fmt.Sprintf("%s    %s\n", cursor, entry.file.Name)
		}
	}
	if m.syncing {
		out += "\n" + m.indicator.View() + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	return renderPage(
		"ВЫБОР ФАЙЛА СИНХРОНИЗАЦИИ",
		strings.TrimRight(out, "\n"),
		"enter: выбрать │ n: новый файл │ backspace: в корень │ ↑/↓: навигация",
	)
}

func (m mainLoopModel) viewNewFile() string {
	out := "Имя файла : [ " + m.nameInput.View() + " ]\n"
	out += "Суффикс " + models.SnapshotFileSuffix + " добавится автоматически\n"
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	return renderPage("НОВЫЙ ФАЙЛ СИНХРОНИЗАЦИИ", strings.TrimRight(out, "\n"), "enter: создать │ esc: назад")
}

func (m mainLoopModel) viewMain() string {
	svc := m.services.SyncService

	out := "Файл      : " + svc.RemoteFile().Name + "\n"
	out += "Аккаунт   : " + svc.Account().Email + "\n"
	out += "Состояние : " + renderState(svc.State()) + "\n"
	out += "Посл. синх: " + formatWhen(svc.LastSyncedAt()) + "\n"
	if len(m.conflicts) > 0 {
		out += warningStyle.Render("Конфликты : "+formatCount(len(m.conflicts), "шт. — нажмите r")) + "\n"
	}
	if m.syncing {
		out += m.indicator.View() + "\n"
	}
	if m.status != "" {
		out += "Статус    : " + m.status + "\n"
	}
	if m.errMsg != "" {
		out += errorStyle.Render("Ошибка    : "+m.errMsg) + "\n"
	}
	out += "\n"

	if len(m.rows) == 0 {
		out += "Записей нет\n"
	} else {
		out += "Тип             │ Название                 │ Изменено\n"
		out += "────────────────┼──────────────────────────┼────────────────────\n"
		for i, row := range m.rows {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-14s │ %-24s │ %s\n",
				cursor,
				fitText(collectionLabel(row.collection), 14),
				fitText(row.rec.DisplayName(), 24),
				formatWhen(row.rec.UpdatedAt),
			)
		}
	}

	return renderPage(
		"РЕЦЕПТЫ И ПЛАНЫ",
		strings.TrimRight(out, "\n"),
		"a: добавить │ e: изм. │ ctrl+d: уд. │ s: синхр. │ r: конфликты │ c: ссылка │ x: отключиться │ q: выход",
	)
}

func (m mainLoopModel) viewConflicts() string {
	out := "Обе стороны изменили эти записи после последней синхронизации.\n"
	out += "Выберите, чья версия победит — решение применяется ко всем сразу.\n\n"
	out += "Тип             │ Название                 │ Локально            │ На диске\n"
	out += "────────────────┼──────────────────────────┼─────────────────────┼────────────────────\n"
	for _, c := range m.conflicts {
		out += fmt.Sprintf(
			"%-15s │ %-24s │ %-19s │ %s\n",
			fitText(collectionLabel(c.Collection), 15),
			fitText(c.DisplayName, 24),
			formatWhen(c.LocalModified),
			formatWhen(c.RemoteModified),
		)
	}
	if m.syncing {
		out += "\n" + m.indicator.View() + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	return renderPage(
		"КОНФЛИКТЫ СИНХРОНИЗАЦИИ",
		strings.TrimRight(out, "\n"),
		"l: оставить локальные │ r: взять с диска │ esc: позже",
	)
}

func (m mainLoopModel) viewAddPick() string {
	out := ""
	for i, collection := range models.CollectionNames() {
		cursor := " "
		if i == m.addCollectionIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %d. %s\n", cursor, i+1, collectionLabel(collection))
	}
	return renderPage("ДОБАВИТЬ: ВЫБОР ТИПА", strings.TrimRight(out, "\n"), "1-5/enter: выбрать │ ↑/↓: навигация │ esc: отмена")
}

func (m mainLoopModel) viewAddName() string {
	title := "НОВАЯ ЗАПИСЬ"
	if m.editTarget != nil {
		title = "ИЗМЕНЕНИЕ ЗАПИСИ"
	}
	out := "Название  : [ " + m.nameInput.View() + " ]\n"
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	return renderPage(title, strings.TrimRight(out, "\n"), "enter: сохранить │ esc: отмена")
}

func renderState(state models.SyncState) string {
	label := stateLabel(state)
	switch state {
	case models.SyncSynced:
		return syncedStyle.Render(label)
	case models.SyncError, models.SyncAwaitingReconnect:
		return errorStyle.Render(label)
	default:
		return label
	}
}

func syncErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "синхронизация не выполнена. Отсутствует сеть или диск недоступен"
	}

	return err.Error()
}
