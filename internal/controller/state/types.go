package state

// Step позиция пользователя в диалоге
type Step int

const (
	StepNone Step = iota

	// Шаги записи на услугу
	StepService
	StepName
	StepPhone
	StepDate
	StepTime

	// Шаги админской навигации по датам
	StepAdminYear
	StepAdminMonth
	StepAdminDay
)

// Session черновик незавершённого диалога одного пользователя.
// Живёт только в памяти процесса: после рестарта диалог начинается заново.
type Session struct {
	Step Step

	// Поля записи. Каждое появляется только после успешной валидации.
	Service string
	Name    string
	Phone   string
	Date    string // дд.мм.гггг

	// Слоты, предложенные на шаге выбора времени. Выбранное время
	// обязано входить в этот список.
	Slots []string

	// Область админской навигации
	AdminYear  string
	AdminMonth string
}
