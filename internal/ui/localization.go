package ui

import "github.com/ytget/yt-dlp-gui/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyURLs                = "urls"
	KeyEnterURLs           = "enter_urls"
	KeyAudioOnly           = "audio_only"
	KeyVideoOnly           = "video_only"
	KeyAudioVideo          = "audio_video"
	KeyQuality             = "quality"
	KeyDestination         = "destination"
	KeyChooseFolder        = "choose_folder"
	KeyBrowse              = "browse"
	KeyOpenFolder          = "open_folder"
	KeySubtitles           = "subtitles"
	KeyUseProxy            = "use_proxy"
	KeySimulate            = "simulate"
	KeyLog                 = "log"
	KeyStart               = "start"
	KeySettings            = "settings"
	KeyFFmpegDirectory     = "ffmpeg_directory"
	KeyFFmpegAuto          = "ffmpeg_auto"
	KeyProxyURL            = "proxy_url"
	KeyLanguage            = "language"
	KeyVerbose             = "verbose"
	KeyExpandPlaylists     = "expand_playlists"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
	KeyFFmpegMissing       = "ffmpeg_missing"
	KeyPleaseEnterURL      = "please_enter_url"
	KeyPleaseChooseFolder  = "please_choose_folder"
	KeyInvalidFolder       = "invalid_folder"
	KeyErrorOpeningFolder  = "error_opening_folder"
	KeyStatusIdle          = "status_idle"
	KeyStatusRunning       = "status_running"
	KeyStatusCompleted     = "status_completed"
	KeyStatusWithErrors    = "status_with_errors"
	KeyDownloadInterrupted = "download_interrupted"
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

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
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

// MediaTypeLabel returns the localized label of a media type
func (l *Localization) MediaTypeLabel(m model.MediaType) string {
	switch m {
	case model.MediaAudioOnly:
		return l.GetText(KeyAudioOnly)
	case model.MediaVideoOnly:
		return l.GetText(KeyVideoOnly)
	default:
		return l.GetText(KeyAudioVideo)
	}
}

// StatusLabel returns the localized label of a run status
func (l *Localization) StatusLabel(s model.RunStatus) string {
	switch s {
	case model.RunStatusRunning:
		return l.GetText(KeyStatusRunning)
	case model.RunStatusCompleted:
		return l.GetText(KeyStatusCompleted)
	case model.RunStatusCompletedWithErrors:
		return l.GetText(KeyStatusWithErrors)
	default:
		return l.GetText(KeyStatusIdle)
	}
}

// initializeTexts sets up all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "yt-dlp GUI",
		KeyURLs:                "Video URLs:",
		KeyEnterURLs:           "Paste one or more URLs separated by spaces",
		KeyAudioOnly:           "Audio only",
		KeyVideoOnly:           "Video only",
		KeyAudioVideo:          "Audio + Video",
		KeyQuality:             "Quality:",
		KeyDestination:         "Destination folder",
		KeyChooseFolder:        "Choose destination folder",
		KeyBrowse:              "Browse",
		KeyOpenFolder:          "Open folder",
		KeySubtitles:           "Download subtitles",
		KeyUseProxy:            "Use proxy",
		KeySimulate:            "Simulate (do not download)",
		KeyLog:                 "Download log:",
		KeyStart:               "Start download",
		KeySettings:            "Settings",
		KeyFFmpegDirectory:     "ffmpeg folder",
		KeyFFmpegAuto:          "Empty = locate automatically",
		KeyProxyURL:            "Proxy URL",
		KeyLanguage:            "Language",
		KeyVerbose:             "Show yt-dlp debug output",
		KeyExpandPlaylists:     "Expand playlist links",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved. The ffmpeg folder and language apply after a restart.",
		KeyFFmpegMissing:       "⚠️ ffmpeg not found. Some features may not work.",
		KeyPleaseEnterURL:      "Please enter at least one URL",
		KeyPleaseChooseFolder:  "Please choose a destination folder",
		KeyInvalidFolder:       "Invalid destination folder",
		KeyErrorOpeningFolder:  "Error opening folder",
		KeyStatusIdle:          "Ready",
		KeyStatusRunning:       "Downloading...",
		KeyStatusCompleted:     "Completed",
		KeyStatusWithErrors:    "Completed with errors",
		KeyDownloadInterrupted: "Download interrupted",
	}

	// Italian texts
	l.texts["it"] = map[string]string{
		KeyAppTitle:            "yt-dlp GUI",
		KeyURLs:                "URL Video:",
		KeyEnterURLs:           "Incolla uno o più URL separati da spazi",
		KeyAudioOnly:           "Solo Audio",
		KeyVideoOnly:           "Solo Video",
		KeyAudioVideo:          "Audio + Video",
		KeyQuality:             "Qualità desiderata:",
		KeyDestination:         "Cartella destinazione",
		KeyChooseFolder:        "Scegli cartella destinazione",
		KeyBrowse:              "Sfoglia",
		KeyOpenFolder:          "Apri cartella",
		KeySubtitles:           "Scarica sottotitoli",
		KeyUseProxy:            "Usa proxy",
		KeySimulate:            "Simula (non scarica)",
		KeyLog:                 "Log download:",
		KeyStart:               "Avvia Download",
		KeySettings:            "Impostazioni",
		KeyFFmpegDirectory:     "Cartella ffmpeg",
		KeyFFmpegAuto:          "Vuoto = ricerca automatica",
		KeyProxyURL:            "URL proxy",
		KeyLanguage:            "Lingua",
		KeyVerbose:             "Mostra output di debug di yt-dlp",
		KeyExpandPlaylists:     "Espandi link playlist",
		KeySave:                "Salva",
		KeyCancel:              "Annulla",
		KeySettingsSaved:       "Impostazioni salvate. Cartella ffmpeg e lingua si applicano al riavvio.",
		KeyFFmpegMissing:       "⚠️ ffmpeg non trovato. Alcune funzionalità potrebbero non funzionare.",
		KeyPleaseEnterURL:      "Inserisci almeno un URL",
		KeyPleaseChooseFolder:  "Scegli una cartella di destinazione",
		KeyInvalidFolder:       "Cartella di destinazione non valida",
		KeyErrorOpeningFolder:  "Errore apertura cartella",
		KeyStatusIdle:          "Pronto",
		KeyStatusRunning:       "Download in corso...",
		KeyStatusCompleted:     "Completato",
		KeyStatusWithErrors:    "Completato con errori",
		KeyDownloadInterrupted: "Download interrotto",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "yt-dlp GUI",
		KeyURLs:                "Ссылки на видео:",
		KeyEnterURLs:           "Вставьте одну или несколько ссылок через пробел",
		KeyAudioOnly:           "Только аудио",
		KeyVideoOnly:           "Только видео",
		KeyAudioVideo:          "Аудио + видео",
		KeyQuality:             "Качество:",
		KeyDestination:         "Папка назначения",
		KeyChooseFolder:        "Выберите папку назначения",
		KeyBrowse:              "Обзор",
		KeyOpenFolder:          "Открыть папку",
		KeySubtitles:           "Скачать субтитры",
		KeyUseProxy:            "Использовать прокси",
		KeySimulate:            "Симуляция (без загрузки)",
		KeyLog:                 "Журнал загрузки:",
		KeyStart:               "Начать загрузку",
		KeySettings:            "Настройки",
		KeyFFmpegDirectory:     "Папка ffmpeg",
		KeyFFmpegAuto:          "Пусто = искать автоматически",
		KeyProxyURL:            "Адрес прокси",
		KeyLanguage:            "Язык",
		KeyVerbose:             "Показывать отладочный вывод yt-dlp",
		KeyExpandPlaylists:     "Раскрывать ссылки на плейлисты",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeySettingsSaved:       "Настройки сохранены. Папка ffmpeg и язык применятся после перезапуска.",
		KeyFFmpegMissing:       "⚠️ ffmpeg не найден. Некоторые функции могут не работать.",
		KeyPleaseEnterURL:      "Введите хотя бы одну ссылку",
		KeyPleaseChooseFolder:  "Выберите папку назначения",
		KeyInvalidFolder:       "Неверная папка назначения",
		KeyErrorOpeningFolder:  "Ошибка открытия папки",
		KeyStatusIdle:          "Готово к работе",
		KeyStatusRunning:       "Загрузка...",
		KeyStatusCompleted:     "Завершено",
		KeyStatusWithErrors:    "Завершено с ошибками",
		KeyDownloadInterrupted: "Загрузка прервана",
	}
}
