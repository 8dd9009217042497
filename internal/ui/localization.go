package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySwitchAnimation    = "switch_animation"
	KeyManageAnimations   = "manage_animations"
	KeyImportGif          = "import_gif"
	KeyDeleteCurrent      = "delete_current"
	KeyCustomOrder        = "custom_order"
	KeyOpenGifFolder      = "open_gif_folder"
	KeyAutoAdvance        = "auto_advance"
	KeyEnableAutoAdvance  = "enable_auto_advance"
	KeySwitchInterval     = "switch_interval"
	KeyResize             = "resize"
	KeyShow               = "show"
	KeyHide               = "hide"
	KeyQuit               = "quit"
	KeyWarning            = "warning"
	KeySuccess            = "success"
	KeyError              = "error"
	KeyConfirmDeleteTitle = "confirm_delete_title"
	KeyConfirmDeleteMsg   = "confirm_delete_msg"
	KeyDeleteSuccess      = "delete_success"
	KeyDeleteFailed       = "delete_failed"
	KeyLastGifWarning     = "last_gif_warning"
	KeyNoGifWarning       = "no_gif_warning"
	KeyNoAnimations       = "no_animations"
	KeyOrderPrompt        = "order_prompt"
	KeyOrderSaved         = "order_saved"
	KeyInvalidOrder       = "invalid_order"
	KeyImportFailed       = "import_failed"
	KeyInterval30         = "interval_30"
	KeyInterval60         = "interval_60"
	KeyInterval120        = "interval_120"
	KeyInterval300        = "interval_300"
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

	// Final fallback - return key itself
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
		"zh": "中文",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Maltese Pet",
		KeySwitchAnimation:    "Switch Animation",
		KeyManageAnimations:   "GIF Manager",
		KeyImportGif:          "Import GIF",
		KeyDeleteCurrent:      "Delete Current GIF",
		KeyCustomOrder:        "Custom Play Order",
		KeyOpenGifFolder:      "Open GIF Folder",
		KeyAutoAdvance:        "Auto Switch",
		KeyEnableAutoAdvance:  "Enable Auto Switch",
		KeySwitchInterval:     "Switch Interval",
		KeyResize:             "Resize",
		KeyShow:               "Show",
		KeyHide:               "Hide",
		KeyQuit:               "Quit",
		KeyWarning:            "Warning",
		KeySuccess:            "Success",
		KeyError:              "Error",
		KeyConfirmDeleteTitle: "Confirm Delete",
		KeyConfirmDeleteMsg:   "Delete the current GIF '%s'?",
		KeyDeleteSuccess:      "GIF deleted",
		KeyDeleteFailed:       "Failed to delete GIF",
		KeyLastGifWarning:     "At least one GIF must remain",
		KeyNoGifWarning:       "No GIF is currently playing",
		KeyNoAnimations:       "Drop GIF files into the gifs folder",
		KeyOrderPrompt:        "Enter GIF numbers separated by commas (e.g. 2,1,3)",
		KeyOrderSaved:         "Play order updated",
		KeyInvalidOrder:       "Invalid order",
		KeyImportFailed:       "Failed to import GIF",
		KeyInterval30:         "30 seconds",
		KeyInterval60:         "1 minute",
		KeyInterval120:        "2 minutes",
		KeyInterval300:        "5 minutes",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:           "线条小狗桌面宠物",
		KeySwitchAnimation:    "切换动画",
		KeyManageAnimations:   "GIF管理",
		KeyImportGif:          "导入GIF",
		KeyDeleteCurrent:      "删除当前GIF",
		KeyCustomOrder:        "自定义播放顺序",
		KeyOpenGifFolder:      "打开GIF目录",
		KeyAutoAdvance:        "自动切换",
		KeyEnableAutoAdvance:  "启用自动切换",
		KeySwitchInterval:     "切换间隔",
		KeyResize:             "调整大小",
		KeyShow:               "显示",
		KeyHide:               "隐藏",
		KeyQuit:               "退出",
		KeyWarning:            "警告",
		KeySuccess:            "成功",
		KeyError:              "错误",
		KeyConfirmDeleteTitle: "确认删除",
		KeyConfirmDeleteMsg:   "确定要删除当前GIF文件 '%s' 吗？",
		KeyDeleteSuccess:      "GIF文件已成功删除",
		KeyDeleteFailed:       "GIF文件删除失败",
		KeyLastGifWarning:     "至少保留一个GIF文件，无法删除",
		KeyNoGifWarning:       "没有正在播放的GIF文件",
		KeyNoAnimations:       "请将GIF文件放入gifs目录",
		KeyOrderPrompt:        "请输入GIF文件的序号，用逗号分隔（例如：2,1,3）",
		KeyOrderSaved:         "GIF播放顺序已更新",
		KeyInvalidOrder:       "序号无效",
		KeyImportFailed:       "导入GIF文件失败",
		KeyInterval30:         "30秒",
		KeyInterval60:         "1分钟",
		KeyInterval120:        "2分钟",
		KeyInterval300:        "5分钟",
	}
}
