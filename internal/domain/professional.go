package domain

// Professional специалист, к которому записываются клиенты
type Professional struct {
	ID                  int64
	Name                string
	Photo               *string
	UsesCompanySchedule bool // true - работает по расписанию компании, а не по своему
}

// Company единственная компания тенанта
type Company struct {
	ID       int64
	Name     string
	Timezone string
}

// ProfessionalOffering специалист вместе со связью на конкретную услугу
type ProfessionalOffering struct {
	Professional Professional
	Offered      OfferedService
}

// ProfessionalSummary краткая карточка специалиста для списков и ответа по слотам
type ProfessionalSummary struct {
	ID    int64
	Name  string
	Photo *string
}

// Summary карточка специалиста
func (p *Professional) Summary() ProfessionalSummary {
	return ProfessionalSummary{ID: p.ID, Name: p.Name, Photo: p.Photo}
}
