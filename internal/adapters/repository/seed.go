package repository

import (
	"time"

	model "github.com/okian/pulss/internal/domain/model"
)

const day = 24 * time.Hour

// loadSeed installs the demo records. Dates are relative to now.
func (s *MemoryStore) loadSeed(now time.Time) {
	ts := model.At(now)
	half := 0.5
	none := 0.0

	s.clients = []model.Client{
		{
			ID:            "1",
			Name:          "焼肉ドブン東京",
			Industry:      "飲食",
			Status:        model.StatusContracted,
			Phase:         model.PhaseOperation,
			SalesOwner:    "田中 健",
			DirectorOwner: "佐藤 恵",
			SlackURL:      "https://slack.com/archives/C123456",
			Memo:          "フランチャイズ展開を検討中。今期は撮影強化がテーマ。",
			LastContactAt: model.Ptr(now),
			CreatedAt:     ts,
			UpdatedAt:     ts,

			OnboardingProgress: &half,
			HasAlert:           false,
			LatestPulseResponse: &model.PulseResponse{
				ID:                "resp_1",
				ClientID:          "1",
				Problem:           "平日の集客が課題、インバウンド向け施策を強化したい。",
				CurrentSNS:        "Instagram週2投稿、写真の質が課題。",
				Target:            "20〜30代のカップルと訪日客",
				ProductSummary:    "上質な国産和牛を手頃な価格で提供",
				StrengthsUSP:      "駅近・個室・接客品質の高さ",
				BrandStory:        "家族経営で30年、地域密着で愛されてきた歴史。",
				ReferenceAccounts: []string{"https://instagram.com/example"},
				SubmittedAt:       ts,
			},
		},
		{
			ID:                 "2",
			Name:               "Luminous Beauty Salon",
			Industry:           "美容",
			Status:             model.StatusPreContract,
			Phase:              model.PhaseProposal,
			SalesOwner:         "鈴木 一郎",
			Memo:               "ROI前提の提案が必要。運用開始は来月を想定。",
			CreatedAt:          ts,
			UpdatedAt:          ts,
			OnboardingProgress: &none,
			HasAlert:           true,
		},
	}

	s.tasks = []model.Task{
		{
			ID:          "t1",
			ClientID:    "1",
			Title:       "アカウント情報取得",
			Description: "Instagramのログイン情報を営業が入手",
			Category:    model.CategoryOnboarding,
			Status:      model.TaskInProgress,
			DueDate:     model.Ptr(now.Add(2 * day)),
			Assignee:    "sales",
			Source:      "template",
			CreatedAt:   ts,
			UpdatedAt:   ts,
		},
		{
			ID:        "t2",
			ClientID:  "1",
			Title:     "初回撮影日のドラフト",
			Category:  model.CategoryOnboarding,
			Status:    model.TaskTodo,
			DueDate:   model.Ptr(now.Add(5 * day)),
			Assignee:  "director",
			Source:    "template",
			CreatedAt: ts,
			UpdatedAt: ts,
		},
		{
			ID:        "t3",
			ClientID:  "1",
			Title:     "次回撮影の事前連絡文案",
			Category:  model.CategoryOperation,
			Status:    model.TaskTodo,
			DueDate:   model.Ptr(now.Add(7 * day)),
			Assignee:  "director",
			Source:    "manual",
			CreatedAt: ts,
			UpdatedAt: ts,
		},
	}

	s.suggestions = []model.AiSuggestion{
		{
			ID:        "ai1",
			ClientID:  "1",
			Type:      "touchpoint_message",
			Title:     "次回撮影前の連絡案",
			Body:      "・撮影前日に投稿素材の整理をお願いする連絡テンプレートです。\n・店舗の新メニュー写真を事前共有してもらう内容を含めています。",
			Status:    model.SuggestionDraft,
			CreatedBy: "ai",
			CreatedAt: ts,
			UpdatedAt: ts,
		},
	}

	s.news = []model.SnsNewsItem{
		{
			ID:           "101",
			Title:        "Instagramリールがシェア重視にアルゴリズム更新",
			Summary:      "保存・シェアが主要シグナルに。企画の作り方を見直そう。",
			URL:          "https://example.com/ig-update",
			PlatformTags: []model.Platform{model.PlatformInstagram},
			IndustryTags: []model.Industry{model.IndustryFood, model.IndustryBeauty, model.IndustryHotel, model.IndustryOther},
			SourceName:   "Social Media Today",
			PublishedAt:  model.At(now.Add(-day)),
			FetchedAt:    ts,
		},
		{
			ID:           "102",
			Title:        "TikTok SEOで地域キーワードが重要に",
			Summary:      "キャプションと音声読み上げを活用してローカル検索を強化する方法。",
			URL:          "https://example.com/tiktok-seo",
			PlatformTags: []model.Platform{model.PlatformTikTok},
			IndustryTags: []model.Industry{model.IndustryFood, model.IndustryOther},
			SourceName:   "Search Engine Land",
			PublishedAt:  model.At(now.Add(-2 * day)),
			FetchedAt:    ts,
		},
	}

	s.loadSalesSeed(now)
}

func intPtr(n int) *int { return &n }

// loadSalesSeed installs the demo pipeline: two leads, one proposal and one
// contract for client 1, and a follow-up reminder per sales owner.
func (s *MemoryStore) loadSalesSeed(now time.Time) {
	ts := model.At(now)

	s.leads = []model.Lead{
		{
			ID:            "l1",
			CompanyName:   "焼肉ドブン東京",
			Industry:      "飲食",
			Source:        "紹介",
			Owner:         "田中 健",
			Status:        model.LeadMeetingScheduled,
			Score:         intPtr(80),
			ExpectedMRR:   intPtr(350000),
			LastContactAt: model.Ptr(now),
			Memo:          "紹介案件。次回オンラインMTGで提案予定。",
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
		{
			ID:            "l2",
			CompanyName:   "Luminous Beauty Salon",
			Industry:      "美容",
			Source:        "テレアポ",
			Owner:         "鈴木 一郎",
			Status:        model.LeadProposal,
			Score:         intPtr(60),
			ExpectedMRR:   intPtr(280000),
			LastContactAt: model.Ptr(now.Add(-2 * day)),
			Memo:          "提案書送付済み。1ヶ月後フォローリマインド。",
			CreatedAt:     model.At(now.Add(-2 * day)),
			UpdatedAt:     model.At(now.Add(-2 * day)),
		},
	}

	s.contacts = []model.ContactLog{
		{
			ID:        "cl1",
			LeadID:    "l2",
			Channel:   "email",
			Content:   "提案書を送付。",
			Actor:     "鈴木 一郎",
			ContactAt: model.At(now.Add(-2 * day)),
			CreatedAt: model.At(now.Add(-2 * day)),
		},
	}

	s.proposals = []model.Proposal{
		{
			ID:          "p1",
			ClientID:    "1",
			Title:       "SNS運用プランA",
			Amount:      intPtr(300000),
			Status:      model.ProposalFollowing,
			SentAt:      model.Ptr(now.Add(-5 * day)),
			FollowDueAt: model.Ptr(now.Add(30 * day)),
			Memo:        "1ヶ月後フォロー自動タスク済み",
			CreatedAt:   model.At(now.Add(-5 * day)),
			UpdatedAt:   ts,
		},
	}

	s.contracts = []model.Contract{
		{
			ID:           "c1",
			ClientID:     "1",
			PlanName:     "Plan A",
			MonthlyFee:   intPtr(300000),
			StartDate:    model.Ptr(now.Truncate(day)),
			PaymentTerms: "monthly",
			CreatedAt:    ts,
			UpdatedAt:    ts,
		},
	}

	s.notifications = []model.Notification{
		{
			ID:        "n1",
			User:      "田中 健",
			Title:     "提案送付後フォロー",
			Body:      "焼肉ドブン東京の提案送付から1ヶ月。フォローを実施してください。",
			CreatedAt: ts,
		},
		{
			ID:        "n2",
			User:      "鈴木 一郎",
			Title:     "撮影日程調整の期限",
			Body:      "Luminous Beauty Salonの撮影日程調整が明日期限です。",
			CreatedAt: ts,
		},
	}
}
