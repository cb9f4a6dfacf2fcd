package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySubtitle         = "subtitle"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyRestart          = "restart"
	KeyLoop             = "loop"
	KeySpeed            = "speed"
	KeyNarration        = "narration"
	KeyDetails          = "details"
	KeyAbout            = "about"
	KeyAboutText        = "about_text"
	KeyPrintChart       = "print_chart"
	KeyPrintSent        = "print_sent"
	KeyPrintFailed      = "print_failed"
	KeyClose            = "close"
	KeyNoDetails        = "no_details"
	KeyNarrationMissing = "narration_missing"
	KeySequenceComplete = "sequence_complete"
	KeyReviewTitle      = "review_title"
	KeyReviewMessage    = "review_message"
	KeyRateNow          = "rate_now"
	KeyNotNow           = "not_now"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "72 Names of God",
		KeySubtitle:         "Kabbalah Power Meditation",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyRestart:          "Restart",
		KeyLoop:             "Loop",
		KeySpeed:            "Speed",
		KeyNarration:        "Listen",
		KeyDetails:          "Details",
		KeyAbout:            "About",
		KeyAboutText:        "Scan the 72 three-letter Names from right to left. Tap the name to pause or resume, use the arrows to move one name at a time and hold them to scroll. The meaning and a full description of each Name are available while paused.",
		KeyPrintChart:       "Print chart",
		KeyPrintSent:        "The chart was sent to the printer",
		KeyPrintFailed:      "Printing failed",
		KeyClose:            "Close",
		KeyNoDetails:        "No description is available for this Name",
		KeyNarrationMissing: "No recording is available for this Name",
		KeySequenceComplete: "All 72 Names scanned",
		KeyReviewTitle:      "Enjoying the meditation?",
		KeyReviewMessage:    "A short review helps others find the 72 Names.",
		KeyRateNow:          "Rate now",
		KeyNotNow:           "Not now",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "72 имени Бога",
		KeySubtitle:         "Каббалистическая медитация",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyRestart:          "Сначала",
		KeyLoop:             "Повтор",
		KeySpeed:            "Скорость",
		KeyNarration:        "Слушать",
		KeyDetails:          "Подробнее",
		KeyAbout:            "О программе",
		KeyAboutText:        "Просматривайте 72 трёхбуквенных имени справа налево. Коснитесь имени, чтобы приостановить или продолжить, стрелками переходите по одному имени, удерживайте их для прокрутки. Значение и описание имени доступны на паузе.",
		KeyPrintChart:       "Печать таблицы",
		KeyPrintSent:        "Таблица отправлена на печать",
		KeyPrintFailed:      "Ошибка печати",
		KeyClose:            "Закрыть",
		KeyNoDetails:        "Описание для этого имени отсутствует",
		KeyNarrationMissing: "Запись для этого имени отсутствует",
		KeySequenceComplete: "Все 72 имени просмотрены",
		KeyReviewTitle:      "Нравится медитация?",
		KeyReviewMessage:    "Короткий отзыв поможет другим найти 72 имени.",
		KeyRateNow:          "Оценить",
		KeyNotNow:           "Не сейчас",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "72 Nomes de Deus",
		KeySubtitle:         "Meditação Cabalística",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyRestart:          "Recomeçar",
		KeyLoop:             "Repetir",
		KeySpeed:            "Velocidade",
		KeyNarration:        "Ouvir",
		KeyDetails:          "Detalhes",
		KeyAbout:            "Sobre",
		KeyPrintChart:       "Imprimir tabela",
		KeyPrintSent:        "A tabela foi enviada para a impressora",
		KeyPrintFailed:      "Falha na impressão",
		KeyClose:            "Fechar",
		KeyNoDetails:        "Nenhuma descrição disponível para este Nome",
		KeyNarrationMissing: "Nenhuma gravação disponível para este Nome",
		KeySequenceComplete: "Os 72 Nomes foram percorridos",
		KeyReviewTitle:      "Gostando da meditação?",
		KeyReviewMessage:    "Uma avaliação curta ajuda outras pessoas a encontrar os 72 Nomes.",
		KeyRateNow:          "Avaliar",
		KeyNotNow:           "Agora não",
	}
}
