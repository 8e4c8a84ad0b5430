package status

// Language is a supported response language tag.
type Language string

// Supported languages. Chinese is the default.
const (
	LanguageZH Language = "zh"
	LanguageEN Language = "en"
	LanguageJA Language = "ja"
)

// ParseLanguage normalizes a raw language tag, defaulting to zh.
func ParseLanguage(raw string) Language {
	switch raw {
	case string(LanguageEN):
		return LanguageEN
	case string(LanguageJA):
		return LanguageJA
	default:
		return LanguageZH
	}
}

// ValidLanguage reports whether raw is one of the accepted language tags or empty.
func ValidLanguage(raw string) bool {
	switch raw {
	case "", string(LanguageZH), string(LanguageEN), string(LanguageJA):
		return true
	default:
		return false
	}
}

// messages holds the advisory server-side message catalogs. The client owns
// authoritative localization; these strings are convenience only.
var messages = map[Language]map[Code]string{
	LanguageZH: {
		Queued:                   "已加入佇列，等待處理",
		Initializing:             "正在初始化解籤任務",
		CacheHit:                 "找到先前的解籤結果",
		RAGStart:                 "開始檢索籤詩",
		RAGConnecting:            "連線至籤詩知識庫",
		RAGSearching:             "檢索相關籤詩與註解",
		RAGSorting:               "整理檢索結果",
		RAGComplete:              "籤詩檢索完成",
		LLMContext:               "準備解籤內容",
		LLMGenerating:            "正在生成解籤",
		LLMStreamingEarly:        "解籤生成中",
		LLMStreamingMiddle:       "解籤生成中，請稍候",
		LLMStreamingLate:         "即將完成解籤",
		LLMStreamingOvertime:     "解籤生成時間較長，仍在進行",
		Validating:               "檢查解籤內容",
		Finalizing:               "整理最終結果",
		Completed:                "解籤完成",
		ErrInternal:              "系統發生錯誤，請稍後再試",
		ErrInvalidInput:          "輸入資料無效",
		ErrNotFound:              "找不到對應的籤詩",
		ErrDependencyUnavailable: "服務暫時繁忙，請稍後再試",
		ErrTimeout:               "處理逾時，請重新提交",
		ErrMalformedOutput:       "解籤生成失敗，請重新提交",
		ErrCancelled:             "任務已取消",
	},
	LanguageEN: {
		Queued:                   "Queued, waiting for a worker",
		Initializing:             "Initializing interpretation task",
		CacheHit:                 "Found a previous interpretation",
		RAGStart:                 "Starting poem retrieval",
		RAGConnecting:            "Connecting to the poem knowledge base",
		RAGSearching:             "Searching related poems and commentary",
		RAGSorting:               "Ranking retrieved context",
		RAGComplete:              "Poem retrieval complete",
		LLMContext:               "Assembling interpretation context",
		LLMGenerating:            "Generating interpretation",
		LLMStreamingEarly:        "Interpretation in progress",
		LLMStreamingMiddle:       "Interpretation in progress, please wait",
		LLMStreamingLate:         "Almost done",
		LLMStreamingOvertime:     "Taking longer than usual, still working",
		Validating:               "Validating interpretation",
		Finalizing:               "Finalizing result",
		Completed:                "Interpretation complete",
		ErrInternal:              "Internal error, please retry later",
		ErrInvalidInput:          "Invalid input",
		ErrNotFound:              "No poem found for this selection",
		ErrDependencyUnavailable: "Service temporarily degraded, retry later",
		ErrTimeout:               "Processing timed out, please resubmit",
		ErrMalformedOutput:       "Generation failed, please resubmit",
		ErrCancelled:             "Task cancelled",
	},
	LanguageJA: {
		Queued:                   "キューに追加されました",
		Initializing:             "解釈タスクを初期化しています",
		CacheHit:                 "以前の解釈結果が見つかりました",
		RAGStart:                 "籤詩の検索を開始します",
		RAGConnecting:            "知識ベースに接続しています",
		RAGSearching:             "関連する籤詩と注釈を検索しています",
		RAGSorting:               "検索結果を整理しています",
		RAGComplete:              "籤詩の検索が完了しました",
		LLMContext:               "解釈の準備をしています",
		LLMGenerating:            "解釈を生成しています",
		LLMStreamingEarly:        "解釈を生成中です",
		LLMStreamingMiddle:       "解釈を生成中です。お待ちください",
		LLMStreamingLate:         "まもなく完了します",
		LLMStreamingOvertime:     "通常より時間がかかっています",
		Validating:               "解釈内容を確認しています",
		Finalizing:               "結果をまとめています",
		Completed:                "解釈が完了しました",
		ErrInternal:              "システムエラーが発生しました",
		ErrInvalidInput:          "入力が無効です",
		ErrNotFound:              "該当する籤詩が見つかりません",
		ErrDependencyUnavailable: "サービスが混雑しています。後ほどお試しください",
		ErrTimeout:               "処理がタイムアウトしました",
		ErrMalformedOutput:       "生成に失敗しました。再送信してください",
		ErrCancelled:             "タスクはキャンセルされました",
	},
}

// Message returns the advisory localized message for a code.
func Message(lang Language, code Code) string {
	if catalog, ok := messages[lang]; ok {
		if msg, ok := catalog[code]; ok {
			return msg
		}
	}
	if msg, ok := messages[LanguageZH][code]; ok {
		return msg
	}
	return ""
}
