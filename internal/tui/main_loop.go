package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/service"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

type section int

const (
	sectionMenu section = iota
	sectionOverview
	sectionBaseFields
	sectionCommonFields
	sectionCategories
	sectionCategoryDetail
)

type addStage int

const (
	addStageNone addStage = iota
	addStageName
	addStageType
	addStageMandatory
)

type deleteKind int

const (
	deleteNone deleteKind = iota
	deleteCommonField
	deleteCategory
	deleteSpecificField
)

var menuItems = []string{"Overview", "Base fields", "Common fields", "Categories"}

type mainLoopModel struct {
	ctx          context.Context
	services     *service.Services
	save         SaveFunc
	configurator *models.Configurator

	section      section
	menuIdx      int
	fieldIdx     int
	catIdx       int
	specIdx      int
	openCategory *models.Category

	status string
	errMsg string

	// add-field flow, shared by common and specific fields
	addStage     addStage
	addSpecific  bool
	addNameInput textinput.Model
	addTypeIdx   int
	addMandatory bool
	addErr       string

	// category creation
	addingCategory bool
	catNameInput   textinput.Model

	// delete confirmation overlay
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	pendingKind   deleteKind

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, save SaveFunc, configurator *models.Configurator) mainLoopModel {
	return mainLoopModel{
		ctx:          ctx,
		services:     services,
		save:         save,
		configurator: configurator,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(saveDoneMsg); ok {
		if saved.err != nil {
			m.errMsg = "Warning: changes could not be saved to disk"
			return m, nil
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.addStage != addStageNone || m.addingCategory {
			return m.updateTextInputs(msg)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.showConfirm {
		return m.updateConfirm(keyMsg)
	}
	if m.addStage != addStageNone {
		return m.updateAddFlow(keyMsg)
	}
	if m.addingCategory {
		return m.updateAddCategory(keyMsg)
	}

	switch m.section {
	case sectionMenu:
		return m.updateMenu(keyMsg)
	case sectionOverview, sectionBaseFields:
		if keyMsg.String() == "esc" {
			m.section = sectionMenu
			m.status = ""
			m.errMsg = ""
		}
		return m, nil
	case sectionCommonFields:
		return m.updateCommonFields(keyMsg)
	case sectionCategories:
		return m.updateCategories(keyMsg)
	case sectionCategoryDetail:
		return m.updateCategoryDetail(keyMsg)
	}

	return m, nil
}

func (m mainLoopModel) updateMenu(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "up", "k":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down", "j":
		if m.menuIdx < len(menuItems)-1 {
			m.menuIdx++
		}
	case "enter":
		m.status = ""
		m.errMsg = ""
		switch m.menuIdx {
		case 0:
			m.section = sectionOverview
		case 1:
			m.section = sectionBaseFields
		case 2:
			m.section = sectionCommonFields
			m.fieldIdx = 0
		case 3:
			m.section = sectionCategories
			m.catIdx = 0
		}
	}
	return m, nil
}

func (m mainLoopModel) updateCommonFields(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.services.Fields.CommonFields()

	switch keyMsg.String() {
	case "esc":
		m.section = sectionMenu
		m.status = ""
		m.errMsg = ""
	case "up", "k":
		if m.fieldIdx > 0 {
			m.fieldIdx--
		}
	case "down", "j":
		if m.fieldIdx < len(fields)-1 {
			m.fieldIdx++
		}
	case "a":
		m.startAddFlow(false)
	case "m":
		if m.fieldIdx >= len(fields) {
			return m, nil
		}
		f := fields[m.fieldIdx]
		if err := m.services.Fields.SetCommonFieldMandatory(f.Name(), !f.Mandatory()); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.status = fmt.Sprintf("Field %q updated", f.Name())
		m.errMsg = ""
		return m, m.cmdSave()
	case "ctrl+d":
		if m.fieldIdx >= len(fields) {
			return m, nil
		}
		m.askDelete(fields[m.fieldIdx].Name(), deleteCommonField)
	}
	return m, nil
}

func (m mainLoopModel) updateCategories(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := m.services.Categories.Categories()

	switch keyMsg.String() {
	case "esc":
		m.section = sectionMenu
		m.status = ""
		m.errMsg = ""
	case "up", "k":
		if m.catIdx > 0 {
			m.catIdx--
		}
	case "down", "j":
		if m.catIdx < len(categories)-1 {
			m.catIdx++
		}
	case "a":
		m.startAddCategory()
	case "enter":
		if m.catIdx >= len(categories) {
			return m, nil
		}
		m.openCategory = categories[m.catIdx]
		m.specIdx = 0
		m.section = sectionCategoryDetail
		m.status = ""
		m.errMsg = ""
	case "ctrl+d":
		if m.catIdx >= len(categories) {
			return m, nil
		}
		m.askDelete(categories[m.catIdx].Name(), deleteCategory)
	}
	return m, nil
}

func (m mainLoopModel) updateCategoryDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.openCategory == nil {
		m.section = sectionCategories
		return m, nil
	}
	fields := m.openCategory.SpecificFields()

	switch keyMsg.String() {
	case "esc":
		m.section = sectionCategories
		m.openCategory = nil
		m.status = ""
		m.errMsg = ""
	case "up", "k":
		if m.specIdx > 0 {
			m.specIdx--
		}
	case "down", "j":
		if m.specIdx < len(fields)-1 {
			m.specIdx++
		}
	case "a":
		m.startAddFlow(true)
	case "m":
		if m.specIdx >= len(fields) {
			return m, nil
		}
		f := fields[m.specIdx]
		if err := m.services.Fields.SetSpecificFieldMandatory(m.openCategory, f.Name(), !f.Mandatory()); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.status = fmt.Sprintf("Field %q updated", f.Name())
		m.errMsg = ""
		return m, m.cmdSave()
	case "ctrl+d":
		if m.specIdx >= len(fields) {
			return m, nil
		}
		m.askDelete(fields[m.specIdx].Name(), deleteSpecificField)
	}
	return m, nil
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		m.showConfirm = false
		return m.performDelete()
	case "n", "esc":
		m.showConfirm = false
		m.pendingDelete = ""
		m.pendingKind = deleteNone
	}
	return m, nil
}

func (m mainLoopModel) performDelete() (tea.Model, tea.Cmd) {
	name := m.pendingDelete
	kind := m.pendingKind
	m.pendingDelete = ""
	m.pendingKind = deleteNone

	var err error
	switch kind {
	case deleteCommonField:
		err = m.services.Fields.RemoveCommonField(name)
		m.fieldIdx = clampIndex(m.fieldIdx, len(m.services.Fields.CommonFields()))
	case deleteCategory:
		err = m.services.Categories.RemoveCategory(name)
		m.catIdx = clampIndex(m.catIdx, len(m.services.Categories.Categories()))
	case deleteSpecificField:
		if m.openCategory == nil {
			return m, nil
		}
		err = m.services.Fields.RemoveSpecificField(m.openCategory, name)
		m.specIdx = clampIndex(m.specIdx, len(m.openCategory.SpecificFields()))
	default:
		return m, nil
	}

	if err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}
	m.status = fmt.Sprintf("%q removed", name)
	m.errMsg = ""
	return m, m.cmdSave()
}

func (m *mainLoopModel) askDelete(name string, kind deleteKind) {
	m.showConfirm = true
	m.confirm.message = name
	m.pendingDelete = name
	m.pendingKind = kind
}

func (m *mainLoopModel) startAddFlow(specific bool) {
	input := textinput.New()
	input.Placeholder = "field name"
	input.CharLimit = 60
	input.Width = 40
	input.Focus()

	m.addStage = addStageName
	m.addSpecific = specific
	m.addNameInput = input
	m.addTypeIdx = 0
	m.addMandatory = false
	m.addErr = ""
}

func (m *mainLoopModel) resetAddFlow() {
	m.addStage = addStageNone
	m.addErr = ""
}

func (m mainLoopModel) updateAddFlow(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.addStage {
	case addStageName:
		return m.updateAddName(keyMsg)
	case addStageType:
		return m.updateAddType(keyMsg)
	case addStageMandatory:
		return m.updateAddMandatory(keyMsg)
	default:
		return m, nil
	}
}

func (m mainLoopModel) updateAddName(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.resetAddFlow()
		return m, nil
	case "enter":
		if strings.TrimSpace(m.addNameInput.Value()) == "" {
			m.addErr = "Name must not be empty"
			return m, nil
		}
		m.addErr = ""
		m.addStage = addStageType
		return m, nil
	}

	var cmd tea.Cmd
	m.addNameInput, cmd = m.addNameInput.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateAddType(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	types := models.AllFieldTypes()

	switch keyMsg.String() {
	case "esc":
		m.resetAddFlow()
		return m, nil
	case "up", "k":
		if m.addTypeIdx > 0 {
			m.addTypeIdx--
		}
	case "down", "j":
		if m.addTypeIdx < len(types)-1 {
			m.addTypeIdx++
		}
	case "1", "2", "3", "4", "5", "6":
		if t, ok := models.FieldTypeFromIndex(int(keyMsg.String()[0] - '0')); ok {
			m.addTypeIdx = int(t) - 1
			m.addStage = addStageMandatory
		}
	case "enter":
		m.addStage = addStageMandatory
	}
	return m, nil
}

func (m mainLoopModel) updateAddMandatory(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.resetAddFlow()
		return m, nil
	case "left", "right", "h", "l", "tab":
		m.addMandatory = !m.addMandatory
	case "y":
		m.addMandatory = true
		return m.submitAddField()
	case "n":
		m.addMandatory = false
		return m.submitAddField()
	case "enter":
		return m.submitAddField()
	}
	return m, nil
}

func (m mainLoopModel) submitAddField() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.addNameInput.Value())
	fieldType, _ := models.FieldTypeFromIndex(m.addTypeIdx + 1)

	var err error
	if m.addSpecific {
		if m.openCategory == nil {
			m.resetAddFlow()
			return m, nil
		}
		err = m.services.Fields.AddSpecificField(m.openCategory, name, fieldType, m.addMandatory)
	} else {
		err = m.services.Fields.AddCommonField(name, fieldType, m.addMandatory)
	}

	if err != nil {
		// Back to the name prompt so a colliding name can be corrected.
		m.addStage = addStageName
		m.addErr = humanizeError(err)
		return m, nil
	}

	m.resetAddFlow()
	m.status = fmt.Sprintf("Field %q added", name)
	m.errMsg = ""
	return m, m.cmdSave()
}

func (m *mainLoopModel) startAddCategory() {
	input := textinput.New()
	input.Placeholder = "category name"
	input.CharLimit = 60
	input.Width = 40
	input.Focus()

	m.addingCategory = true
	m.catNameInput = input
	m.addErr = ""
}

func (m mainLoopModel) updateAddCategory(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.addingCategory = false
		m.addErr = ""
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.catNameInput.Value())
		if name == "" {
			m.addErr = "Name must not be empty"
			return m, nil
		}
		if _, err := m.services.Categories.AddCategory(name); err != nil {
			m.addErr = humanizeError(err)
			return m, nil
		}
		m.addingCategory = false
		m.addErr = ""
		m.status = fmt.Sprintf("Category %q added", name)
		m.errMsg = ""
		return m, m.cmdSave()
	}

	var cmd tea.Cmd
	m.catNameInput, cmd = m.catNameInput.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateTextInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.addingCategory {
		m.catNameInput, cmd = m.catNameInput.Update(msg)
		return m, cmd
	}
	if m.addStage == addStageName {
		m.addNameInput, cmd = m.addNameInput.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	save := m.save
	return func() tea.Msg {
		return saveDoneMsg{err: save(ctx)}
	}
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m mainLoopModel) View() string {
	var body string
	switch {
	case m.addStage != addStageNone:
		body = m.viewAddFlow()
	case m.addingCategory:
		body = m.viewAddCategory()
	default:
		switch m.section {
		case sectionMenu:
			body = m.viewMenu()
		case sectionOverview:
			body = m.viewOverview()
		case sectionBaseFields:
			body = m.viewBaseFields()
		case sectionCommonFields:
			body = m.viewCommonFields()
		case sectionCategories:
			body = m.viewCategories()
		case sectionCategoryDetail:
			body = m.viewCategoryDetail()
		}
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}

	return appStyle.Render(body)
}

func (m mainLoopModel) viewMenu() string {
	var b strings.Builder

	b.WriteString("Signed in as: ")
	b.WriteString(m.configurator.Username())
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	b.WriteString(m.statusLines())

	return renderPage("CONFIGURATION", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ l: logout │ q: quit")
}

func (m mainLoopModel) viewOverview() string {
	var b strings.Builder

	b.WriteString("[ BASE FIELDS — shared by every category ]\n")
	b.WriteString(renderFieldTable(baseFieldsAsFields(m.services.Configuration.BaseFields()), -1))
	b.WriteString("\n\n[ COMMON FIELDS — shared by every category ]\n")
	b.WriteString(renderFieldTable(commonFieldsAsFields(m.services.Fields.CommonFields()), -1))
	b.WriteString("\n\n[ CATEGORIES ]\n")

	categories := m.services.Categories.Categories()
	if len(categories) == 0 {
		b.WriteString("(no categories)\n")
	}
	for _, c := range categories {
		b.WriteString("\n")
		b.WriteString(c.Name())
		b.WriteString("\n")
		b.WriteString(renderFieldTable(specificFieldsAsFields(c.SpecificFields()), -1))
		b.WriteString("\n")
	}

	return renderPage("OVERVIEW", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func (m mainLoopModel) viewBaseFields() string {
	var b strings.Builder
	b.WriteString("Base fields are part of every category form and cannot be\n")
	b.WriteString("changed or removed.\n\n")
	b.WriteString(renderFieldTable(baseFieldsAsFields(m.services.Configuration.BaseFields()), -1))

	return renderPage("BASE FIELDS", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func (m mainLoopModel) viewCommonFields() string {
	var b strings.Builder
	b.WriteString(renderFieldTable(commonFieldsAsFields(m.services.Fields.CommonFields()), m.fieldIdx))
	b.WriteString(m.statusLines())

	return renderPage(
		"COMMON FIELDS",
		strings.TrimRight(b.String(), "\n"),
		"a: add │ m: toggle mandatory │ ctrl+d: delete │ ↑/↓: navigate │ esc: back",
	)
}

func (m mainLoopModel) viewCategories() string {
	var b strings.Builder
	b.WriteString(renderCategoryTable(m.services.Categories.Categories(), m.catIdx))
	b.WriteString(m.statusLines())

	return renderPage(
		"CATEGORIES",
		strings.TrimRight(b.String(), "\n"),
		"a: add │ enter: open │ ctrl+d: delete │ ↑/↓: navigate │ esc: back",
	)
}

func (m mainLoopModel) viewCategoryDetail() string {
	if m.openCategory == nil {
		return renderPage("CATEGORY", "Category not found", "esc: back")
	}

	var b strings.Builder
	b.WriteString("[ COMPLETE FORM ]\n")
	b.WriteString(renderFormTable(m.categoryFormFields()))
	b.WriteString("\n\n[ SPECIFIC FIELDS ]\n")
	b.WriteString(renderFieldTable(specificFieldsAsFields(m.openCategory.SpecificFields()), m.specIdx))
	b.WriteString(m.statusLines())

	return renderPage(
		"CATEGORY: "+fitText(m.openCategory.Name(), 40),
		strings.TrimRight(b.String(), "\n"),
		"a: add │ m: toggle mandatory │ ctrl+d: delete │ ↑/↓: navigate │ esc: back",
	)
}

func (m mainLoopModel) viewAddFlow() string {
	scope := "common fields"
	if m.addSpecific && m.openCategory != nil {
		scope = "category " + m.openCategory.Name()
	}

	var b strings.Builder
	b.WriteString("Adding a field to ")
	b.WriteString(scope)
	b.WriteString("\n\n")

	switch m.addStage {
	case addStageName:
		b.WriteString("Name      : [ ")
		b.WriteString(m.addNameInput.View())
		b.WriteString(" ]\n")
	case addStageType:
		b.WriteString("Name      : ")
		b.WriteString(strings.TrimSpace(m.addNameInput.Value()))
		b.WriteString("\n\nChoose the field type:\n")
		for i, t := range models.AllFieldTypes() {
			cursor := " "
			if i == m.addTypeIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, t.DisplayName()))
		}
	case addStageMandatory:
		fieldType, _ := models.FieldTypeFromIndex(m.addTypeIdx + 1)
		b.WriteString("Name      : ")
		b.WriteString(strings.TrimSpace(m.addNameInput.Value()))
		b.WriteString("\nType      : ")
		b.WriteString(fieldType.DisplayName())
		b.WriteString("\n\nMandatory : ")
		if m.addMandatory {
			b.WriteString("[yes]  no ")
		} else {
			b.WriteString(" yes  [no]")
		}
		b.WriteString("\n")
	}

	if m.addErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.addErr)
		b.WriteString("\n")
	}

	hotKeys := "enter: next │ esc: cancel"
	if m.addStage == addStageType {
		hotKeys = "1-6/enter: choose │ ↑/↓: navigate │ esc: cancel"
	}
	if m.addStage == addStageMandatory {
		hotKeys = "y/n: choose │ ←/→: toggle │ enter: save │ esc: cancel"
	}
	return renderPage("NEW FIELD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewAddCategory() string {
	var b strings.Builder
	b.WriteString("Name      : [ ")
	b.WriteString(m.catNameInput.View())
	b.WriteString(" ]\n")

	if m.addErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.addErr)
		b.WriteString("\n")
	}

	return renderPage("NEW CATEGORY", strings.TrimRight(b.String(), "\n"), "enter: save │ esc: cancel")
}

// categoryFormFields collects the full form of the open category in display
// order: base fields, common fields, then its specific fields.
func (m mainLoopModel) categoryFormFields() []models.Field {
	var out []models.Field
	out = append(out, baseFieldsAsFields(m.services.Configuration.BaseFields())...)
	out = append(out, commonFieldsAsFields(m.services.Fields.CommonFields())...)
	out = append(out, specificFieldsAsFields(m.openCategory.SpecificFields())...)
	return out
}

func (m mainLoopModel) statusLines() string {
	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("\n\nError: ")
		b.WriteString(m.errMsg)
	}
	if m.status != "" {
		b.WriteString("\n\nStatus: ")
		b.WriteString(m.status)
	}
	return b.String()
}
