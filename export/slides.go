package export

import "fmt"

// Slide layouts. Coordinates are inches on a 13.33 x 7.5 canvas.

var projectNames = []string{"🗂 Маркетинг", "🗂 Продажи", "🗂 Аналитика"}

// pageNumber adds the "n / 8" label in the bottom-right corner.
func pageNumber(c *Canvas, color Color) {
	c.Text(fmt.Sprintf("%d / %d", c.Info.Number, deckSlideCount), 12.5, 7.1, 1, 0.3,
		TextStyle{Size: 10, Color: color, Align: AlignRight})
}

// sendButton draws the accent arrow button next to a chat input.
func sendButton(c *Canvas) {
	c.Rect(12.1, 6.3, 0.55, 0.55, Accent, nil, 8000)
	c.Text("→", 12.1, 6.3, 0.55, 0.55, TextStyle{Size: 14, Bold: true, Color: White, Align: AlignCenter})
}

// addCoverSlide: logo, product name and tagline.
func (s *DesignDeckService) addCoverSlide(c *Canvas) {
	c.Background(BgLight)

	// accent blobs
	c.Rect(0, 0, 4, 3, warmBlob, nil, 0)
	c.Rect(9, 4, 5, 4, coolBlob, nil, 0)

	// logo
	c.Dot(6.665, 2.8, 0.35, Accent)
	c.Text("●", 6.42, 2.45, 1, 0.6, TextStyle{Size: 28, Color: Accent, Align: AlignCenter})

	c.Text("YAgent", 3.5, 3.0, 6.3, 1.2, TextStyle{Size: 52, Bold: true, Color: TextDark, Align: AlignCenter})
	c.Text("Персональный AI-ассистент", 3.5, 4.0, 6.3, 0.6, TextStyle{Size: 22, Color: Muted, Align: AlignCenter})
	c.Text("Скачай → Запусти → Работай с AI", 3.5, 4.7, 6.3, 0.5,
		TextStyle{Size: 16, Italic: true, Color: Muted, Align: AlignCenter})

	pageNumber(c, Muted)
}

// addWelcomeSlide: onboarding step 1.
func (s *DesignDeckService) addWelcomeSlide(c *Canvas) {
	c.Background(BgLight)

	c.Text("Шаг 1 из 2", 0, 0.3, 13.33, 0.4, TextStyle{Size: 11, Color: Accent, Align: AlignCenter})

	c.Rect(3.8, 1.1, 5.7, 5.5, White, outline(Border), 12000)

	c.Text("●", 6.1, 1.4, 1.1, 0.7, TextStyle{Size: 26, Color: Accent, Align: AlignCenter})
	c.Text("Добро пожаловать", 3.8, 2.2, 5.7, 0.8, TextStyle{Size: 24, Bold: true, Color: TextDark, Align: AlignCenter})
	c.Text("YAgent — ваш персональный AI-ассистент.\nЗапускается локально, работает с Claude.", 3.8, 3.1, 5.7, 1.0,
		TextStyle{Size: 13, Color: Muted, Align: AlignCenter})

	c.Rect(4.8, 4.3, 3.7, 0.65, Accent, nil, 8000)
	c.Text("Начать →", 4.8, 4.3, 3.7, 0.65, TextStyle{Size: 14, Bold: true, Color: White, Align: AlignCenter})

	pageNumber(c, Muted)
}

// addAPIKeySlide: onboarding step 2.
func (s *DesignDeckService) addAPIKeySlide(c *Canvas) {
	c.Background(BgLight)

	c.Text("Шаг 2 из 2", 0, 0.3, 13.33, 0.4, TextStyle{Size: 11, Color: Accent, Align: AlignCenter})

	c.Rect(3.5, 1.0, 6.3, 5.8, White, outline(Border), 12000)

	c.Text("Введите API ключ", 3.5, 1.4, 6.3, 0.7, TextStyle{Size: 22, Bold: true, Color: TextDark, Align: AlignCenter})
	c.Text("Anthropic API Key нужен для доступа к Claude.\nПолучить: console.anthropic.com", 3.5, 2.2, 6.3, 0.8,
		TextStyle{Size: 12, Color: Muted, Align: AlignCenter})

	// input field
	c.Rect(4.0, 3.2, 5.3, 0.55, Panel, outline(Border), 5000)
	c.Text("sk-ant-api03-••••••••••••••••••••••", 4.1, 3.22, 5.0, 0.45, TextStyle{Size: 12, Color: Muted})

	c.Text("🔒  Ключ хранится только локально", 4.0, 3.9, 5.3, 0.4, TextStyle{Size: 11, Color: Muted, Align: AlignCenter})

	c.Rect(4.5, 4.6, 4.3, 0.65, Accent, nil, 8000)
	c.Text("Сохранить и продолжить →", 4.5, 4.6, 4.3, 0.65, TextStyle{Size: 13, Bold: true, Color: White, Align: AlignCenter})

	pageNumber(c, Muted)
}

// addMainInterfaceSlide: icon rail, projects panel and a chat.
func (s *DesignDeckService) addMainInterfaceSlide(c *Canvas) {
	c.Background(BgLight)

	c.Text("Главный интерфейс", 0.3, 0.2, 8, 0.5, TextStyle{Size: 18, Bold: true, Color: TextDark})
	c.Text("Проекты (агенты) + Чаты (сессии)", 0.3, 0.65, 8, 0.35, TextStyle{Size: 12, Color: Muted})

	// app shell
	c.Rect(0.3, 1.1, 12.73, 6.0, White, outline(Border), 8000)

	// icon rail
	c.Rect(0.3, 1.1, 0.7, 6.0, Panel, nil, 0)
	for i, icon := range []string{"⊕", "💬", "★", "⚙"} {
		c.Text(icon, 0.3, 1.5+float64(i)*0.9, 0.7, 0.5, TextStyle{Size: 14, Color: Muted, Align: AlignCenter})
	}

	// projects panel
	c.Rect(1.0, 1.1, 2.5, 6.0, BgLight, nil, 0)
	c.Text("Проекты", 1.1, 1.2, 2.2, 0.4, TextStyle{Size: 11, Bold: true, Color: Muted})
	c.Rect(1.05, 1.65, 2.4, 0.4, Panel, outline(Border), 5000)
	c.Text("+ Новый проект", 1.1, 1.68, 2.3, 0.32, TextStyle{Size: 10, Bold: true, Color: Accent})
	for i, name := range projectNames {
		active := i == 0
		fill, border, color := BgLight, (*Color)(nil), Muted
		if active {
			fill, border, color = White, outline(Border), TextDark
		}
		row := float64(i) * 0.7
		c.Rect(1.05, 2.2+row, 2.4, 0.55, fill, border, 5000)
		c.Text(name, 1.15, 2.25+row, 2.2, 0.4, TextStyle{Size: 11, Bold: active, Color: color})
	}

	// chat area
	c.Rect(3.5, 1.1, 9.53, 6.0, White, nil, 0)
	c.Text("Маркетинг / Чат 1", 3.6, 1.2, 6, 0.4, TextStyle{Size: 13, Bold: true, Color: TextDark})

	c.Rect(3.6, 1.8, 7, 0.7, Panel, nil, 8000)
	c.Text("👤 Привет! Нужна помощь с контент-планом.", 3.7, 1.88, 6.8, 0.5, TextStyle{Size: 11, Color: TextDark})
	c.Rect(3.6, 2.65, 8, 0.85, aiBubble, nil, 8000)
	c.Text("🤖 Конечно! Вот структура контент-плана на месяц:\n1. Анализ аудитории  2. Темы постов  3. Расписание",
		3.7, 2.7, 7.8, 0.75, TextStyle{Size: 11, Color: TextDark})

	// input
	c.Rect(3.6, 6.3, 8.8, 0.55, Panel, outline(Border), 8000)
	c.Text("Написать сообщение...", 3.75, 6.33, 7, 0.45, TextStyle{Size: 11, Color: Muted})
	sendButton(c)

	pageNumber(c, Muted)
}

// addNewProjectSlide: modal dialog over a dimmed backdrop.
func (s *DesignDeckService) addNewProjectSlide(c *Canvas) {
	c.Background(BgLight)

	c.Text("Создание нового проекта", 0.3, 0.2, 8, 0.5, TextStyle{Size: 18, Bold: true, Color: TextDark})

	c.Overlay(0.0, 0.7, 13.33, 6.8, BgDark, 60)

	// modal card
	c.Rect(4.2, 1.8, 4.9, 4.2, White, nil, 14000)
	c.Text("Новый проект", 4.2, 2.0, 4.9, 0.55, TextStyle{Size: 18, Bold: true, Color: TextDark, Align: AlignCenter})

	c.Text("Название", 4.5, 2.75, 1.5, 0.3, TextStyle{Size: 11, Bold: true, Color: Muted})
	c.Rect(4.5, 3.05, 3.9, 0.45, Panel, outline(Border), 5000)
	c.Text("Например: Маркетинг", 4.62, 3.08, 3.6, 0.35, TextStyle{Size: 11, Color: Muted})

	c.Text("Описание (необязательно)", 4.5, 3.65, 3, 0.3, TextStyle{Size: 11, Bold: true, Color: Muted})
	c.Rect(4.5, 3.95, 3.9, 0.45, Panel, outline(Border), 5000)
	c.Text("Что делать в этом проекте...", 4.62, 3.98, 3.6, 0.35, TextStyle{Size: 11, Color: Muted})

	c.Rect(5.65, 4.65, 1.4, 0.45, Panel, outline(Border), 8000)
	c.Text("Отмена", 5.65, 4.65, 1.4, 0.45, TextStyle{Size: 12, Color: Muted, Align: AlignCenter})
	c.Rect(7.15, 4.65, 1.6, 0.45, Accent, nil, 8000)
	c.Text("Создать", 7.15, 4.65, 1.6, 0.45, TextStyle{Size: 12, Bold: true, Color: White, Align: AlignCenter})

	pageNumber(c, Muted)
}

type chatMessage struct {
	ai   bool
	text string
}

func senderLabel(ai bool) string {
	if ai {
		return "🤖 AI"
	}
	return "👤 Вы"
}

// addProjectChatSlide: chat list inside a project and an open session.
func (s *DesignDeckService) addProjectChatSlide(c *Canvas) {
	c.Background(BgLight)

	c.Text("Чат внутри проекта", 0.3, 0.2, 8, 0.5, TextStyle{Size: 18, Bold: true, Color: TextDark})
	c.Text("Каждый чат = отдельная сессия с AI", 0.3, 0.65, 8, 0.35, TextStyle{Size: 12, Color: Muted})

	c.Rect(0.3, 1.1, 12.73, 6.0, White, outline(Border), 8000)
	c.Rect(0.3, 1.1, 0.7, 6.0, Panel, nil, 0)   // rail
	c.Rect(1.0, 1.1, 2.5, 6.0, BgLight, nil, 0) // sidebar

	c.Text("Маркетинг", 1.1, 1.2, 2.2, 0.4, TextStyle{Size: 12, Bold: true, Color: TextDark})
	c.Text("Чаты", 1.1, 1.7, 2.2, 0.35, TextStyle{Size: 10, Bold: true, Color: Muted})
	c.Rect(1.05, 2.05, 2.4, 0.38, Panel, outline(Border), 5000)
	c.Text("+ Новый чат", 1.1, 2.07, 2.3, 0.3, TextStyle{Size: 10, Bold: true, Color: Accent})
	for i, chat := range []string{"💬 Контент-план", "💬 Email-рассылка", "💬 SMM стратегия"} {
		active := i == 0
		fill, border, color := BgLight, (*Color)(nil), Muted
		if active {
			fill, border, color = White, outline(Border), TextDark
		}
		row := float64(i) * 0.6
		c.Rect(1.05, 2.55+row, 2.4, 0.48, fill, border, 5000)
		c.Text(chat, 1.15, 2.59+row, 2.2, 0.35, TextStyle{Size: 10, Bold: active, Color: color})
		// delete button shown on hover
		if active {
			c.Text("✕", 3.1, 2.62, 0.3, 0.3, TextStyle{Size: 9, Color: Muted, Align: AlignCenter})
		}
	}

	c.Text("Контент-план", 3.6, 1.2, 5, 0.4, TextStyle{Size: 13, Bold: true, Color: TextDark})
	c.Text("✕ Завершить чат", 10.5, 1.2, 2.3, 0.4, TextStyle{Size: 10, Color: Muted, Align: AlignRight})

	messages := []chatMessage{
		{false, "Составь контент-план на март для Instagram."},
		{true, "Готово! Вот план на март:\n• 1-7 марта: Знакомство с командой\n• 8-15 марта: Кейсы клиентов\n• 16-23: Советы и лайфхаки\n• 24-31: Итоги месяца"},
	}
	for i, msg := range messages {
		bubble, label := Panel, TextDark
		if msg.ai {
			bubble, label = aiBubble, Accent
		}
		row := float64(i) * 1.4
		c.Rect(3.6, 1.8+row, 8.5, 1.1, bubble, nil, 8000)
		c.Text(senderLabel(msg.ai), 3.7, 1.83+row, 1, 0.35, TextStyle{Size: 10, Bold: true, Color: label})
		c.Text(msg.text, 3.7, 2.15+row, 8.2, 0.7, TextStyle{Size: 10, Color: TextDark})
	}

	c.Rect(3.6, 6.3, 8.8, 0.55, Panel, outline(Border), 8000)
	c.Text("Продолжить...", 3.75, 6.33, 7, 0.45, TextStyle{Size: 11, Color: Muted})
	sendButton(c)

	pageNumber(c, Muted)
}

// addDarkThemeSlide: the main interface in dark mode.
func (s *DesignDeckService) addDarkThemeSlide(c *Canvas) {
	c.Background(BgDark)

	c.Text("Тёмная тема", 0.3, 0.2, 8, 0.5, TextStyle{Size: 18, Bold: true, Color: TextLight})
	c.Text("Автоматически следует системным настройкам", 0.3, 0.65, 9, 0.35, TextStyle{Size: 12, Color: darkMuted})

	c.Rect(0.3, 1.1, 12.73, 6.0, BgDark, outline(DarkBorder), 8000)
	c.Rect(0.3, 1.1, 0.7, 6.0, DarkPanel, nil, 0)
	c.Rect(1.0, 1.1, 2.5, 6.0, darkSidebar, nil, 0)

	c.Text("Проекты", 1.1, 1.2, 2.2, 0.4, TextStyle{Size: 11, Bold: true, Color: darkMuted})
	for i, name := range projectNames {
		active := i == 0
		fill, border, color := darkSidebar, (*Color)(nil), darkMuted
		if active {
			fill, border, color = DarkPanel, outline(DarkBorder), TextLight
		}
		row := float64(i) * 0.7
		c.Rect(1.05, 1.8+row, 2.4, 0.55, fill, border, 5000)
		c.Text(name, 1.15, 1.85+row, 2.2, 0.4, TextStyle{Size: 11, Bold: active, Color: color})
	}

	c.Text("Контент-план", 3.6, 1.2, 5, 0.4, TextStyle{Size: 13, Bold: true, Color: TextLight})

	messages := []chatMessage{
		{false, "Составь контент-план на март."},
		{true, "Готово! Вот план на март:\n• 1-7: Знакомство с командой\n• 8-15: Кейсы клиентов"},
	}
	for i, msg := range messages {
		bubble, label := DarkPanel, TextLight
		if msg.ai {
			bubble, label = darkAIBlob, Accent
		}
		row := float64(i) * 1.3
		c.Rect(3.6, 1.8+row, 8.5, 1.0, bubble, nil, 8000)
		c.Text(senderLabel(msg.ai), 3.7, 1.83+row, 1, 0.35, TextStyle{Size: 10, Bold: true, Color: label})
		c.Text(msg.text, 3.7, 2.12+row, 8.2, 0.65, TextStyle{Size: 10, Color: TextLight})
	}

	c.Rect(3.6, 6.3, 8.8, 0.55, DarkPanel, outline(DarkBorder), 8000)
	c.Text("Написать...", 3.75, 6.33, 7, 0.45, TextStyle{Size: 11, Color: darkMuted})
	sendButton(c)

	pageNumber(c, darkPageNum)
}

// ChecklistItem is one line of the closing slide.
type ChecklistItem struct {
	Label string
	Done  bool
}

// Checklist is what the design round delivered.
var Checklist = []ChecklistItem{
	{"Редизайн в стиле Anthropic", true},
	{"Управление проектами и чатами", true},
	{"Скрытое меню разработчика", true},
	{"Hard Reset скрипт", true},
	{"Тёмная тема", true},
}

// addFinalSlide: sign-off and checklist.
func (s *DesignDeckService) addFinalSlide(c *Canvas) {
	c.Background(BgLight)

	c.Rect(0, 0, 4, 3, warmBlob, nil, 0)
	c.Rect(9, 4, 5, 4, coolBlob, nil, 0)

	c.Text("●", 6.42, 2.1, 1, 0.6, TextStyle{Size: 28, Color: Accent, Align: AlignCenter})
	c.Text("Готово к разработке", 2.5, 2.8, 8.3, 1.0, TextStyle{Size: 36, Bold: true, Color: TextDark, Align: AlignCenter})
	c.Text("Дизайн согласован. Запускаем.", 3.5, 3.8, 6.3, 0.6, TextStyle{Size: 18, Color: Muted, Align: AlignCenter})

	for i, item := range Checklist {
		color := Muted
		if item.Done {
			color = doneGreen
		}
		c.Text("✓  "+item.Label, 4.5, 4.6+float64(i)*0.38, 5, 0.35, TextStyle{Size: 13, Color: color})
	}

	pageNumber(c, Muted)
}
