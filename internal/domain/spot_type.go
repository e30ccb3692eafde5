package domain

// SpotTypeDefinition describes a category of parking space
type SpotTypeDefinition struct {
	Tag        string
	Label      string
	Multiplier float64
	Prefix     string // Префикс для генерации номера места (A17, E3, ...)
}

// Fallback values for unknown spot types
const (
	DefaultSpotTypeMultiplier = 1.0
	DefaultSpotTypePrefix     = "X"
)

// spotTypes статическая таблица типов парковочных мест
// Неизменяемая, process-wide; порядок сохраняется для выдачи в booking-options
var spotTypes = []SpotTypeDefinition{
	{Tag: "vip", Label: "VIP", Multiplier: 2.0, Prefix: "A"},
	{Tag: "normal", Label: "Normal", Multiplier: 1.0, Prefix: "B"},
	{Tag: "car", Label: "Car", Multiplier: 1.0, Prefix: "C"},
	{Tag: "bike", Label: "Bike", Multiplier: 0.5, Prefix: "D"},
	{Tag: "electric", Label: "Electric", Multiplier: 1.2, Prefix: "E"},
	{Tag: "handicapped", Label: "Handicapped", Multiplier: 0.8, Prefix: "H"},
}

// LookupSpotType возвращает определение типа места по тегу
// Неизвестный тег не является ошибкой: UI не должен блокироваться из-за
// нераспознанного типа, поэтому возвращается permissive fallback
// {multiplier: 1, prefix: "X"}
func LookupSpotType(tag string) SpotTypeDefinition {
	for _, st := range spotTypes {
		if st.Tag == tag {
			return st
		}
	}
	return SpotTypeDefinition{
		Tag:        tag,
		Label:      tag,
		Multiplier: DefaultSpotTypeMultiplier,
		Prefix:     DefaultSpotTypePrefix,
	}
}

// SpotTypes возвращает копию таблицы типов мест
func SpotTypes() []SpotTypeDefinition {
	out := make([]SpotTypeDefinition, len(spotTypes))
	copy(out, spotTypes)
	return out
}
