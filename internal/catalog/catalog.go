package catalog

// DefaultDurationHours используется для услуг, которых больше нет в каталоге
// (старые записи в БД могут ссылаться на удалённую услугу)
const DefaultDurationHours = 1.5

// entry услуга каталога
type entry struct {
	Name     string
	Duration float64 // длительность в часах
}

// Каталог статичен на время жизни процесса
var services = []entry{
	{"Маникюр + гель-лак", 1.5},
	{"Маникюр + укрепление", 2.0},
	{"Наращивание (короткие)", 2.0},
	{"Наращивание (длинные)", 3.0},
	{"Френч (как доп. к услуге)", 0.5},
}

// Names возвращает названия услуг в порядке показа на клавиатуре
func Names() []string {
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return names
}

// Exists проверяет что услуга есть в каталоге
func Exists(name string) bool {
	for _, s := range services {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Duration возвращает длительность услуги в часах.
// Для неизвестной услуги возвращает DefaultDurationHours.
func Duration(name string) float64 {
	for _, s := range services {
		if s.Name == name {
			return s.Duration
		}
	}
	return DefaultDurationHours
}
