package model

import "fmt"

// ViewState 视图状态（对外可见的枚举标识）
type ViewState string

const (
	ViewLanding      ViewState = "LANDING"
	ViewOnboarding   ViewState = "ONBOARDING"
	ViewDashboard    ViewState = "DASHBOARD"
	ViewFeed         ViewState = "FEED"
	ViewSpaceArt     ViewState = "SPACE_ART"
	ViewSpaceWriting ViewState = "SPACE_WRITING"
	ViewSpaceMusic   ViewState = "SPACE_MUSIC"
	ViewProfile      ViewState = "PROFILE"
)

// AllViews 按侧边栏与流程顺序列出的全部视图
var AllViews = []ViewState{
	ViewLanding, ViewOnboarding, ViewDashboard, ViewFeed,
	ViewSpaceArt, ViewSpaceWriting, ViewSpaceMusic, ViewProfile,
}

func (v ViewState) Valid() bool {
	for _, x := range AllViews {
		if x == v {
			return true
		}
	}
	return false
}

// RequiresUser 除 LANDING / ONBOARDING 外的视图都需要已登录用户
func (v ViewState) RequiresUser() bool {
	return v != ViewLanding && v != ViewOnboarding
}

// EmotionType 情绪标签
type EmotionType string

const (
	EmotionHappy   EmotionType = "Happy"
	EmotionCurious EmotionType = "Curious"
	EmotionAnxious EmotionType = "Anxious"
	EmotionTender  EmotionType = "Tender"
	EmotionHeavy   EmotionType = "Heavy"
	EmotionExcited EmotionType = "Excited"
	EmotionUnsure  EmotionType = "Unsure"
	EmotionCalm    EmotionType = "Calm"
)

var AllEmotions = []EmotionType{
	EmotionHappy, EmotionCurious, EmotionAnxious, EmotionTender,
	EmotionHeavy, EmotionExcited, EmotionUnsure, EmotionCalm,
}

func (e EmotionType) Valid() bool {
	for _, x := range AllEmotions {
		if x == e {
			return true
		}
	}
	return false
}

// ParseEmotion 解析情绪标签，大小写敏感
func ParseEmotion(s string) (EmotionType, error) {
	e := EmotionType(s)
	if !e.Valid() {
		return "", fmt.Errorf("unknown emotion %q", s)
	}
	return e, nil
}

// ContentType 内容类型
type ContentType string

const (
	ContentArt     ContentType = "Art"
	ContentWriting ContentType = "Writing"
	ContentMusic   ContentType = "Music"
	ContentCheckIn ContentType = "Check-in"
)

var AllContentTypes = []ContentType{ContentArt, ContentWriting, ContentMusic, ContentCheckIn}

// CreatableContentTypes 创作流程可选的类型（打卡只能由 check-in 产生）
var CreatableContentTypes = []ContentType{ContentArt, ContentWriting, ContentMusic}

func (c ContentType) Valid() bool {
	for _, x := range AllContentTypes {
		if x == c {
			return true
		}
	}
	return false
}

func (c ContentType) Creatable() bool {
	for _, x := range CreatableContentTypes {
		if x == c {
			return true
		}
	}
	return false
}

func ParseContentType(s string) (ContentType, error) {
	c := ContentType(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown content type %q", s)
	}
	return c, nil
}

// Filter 信息流筛选：ALL 或某个内容类型
type Filter string

const FilterAll Filter = "ALL"

// FilterOptions 筛选器展示顺序
var FilterOptions = []Filter{
	FilterAll, Filter(ContentArt), Filter(ContentWriting), Filter(ContentMusic), Filter(ContentCheckIn),
}

func FilterOf(c ContentType) Filter { return Filter(c) }

func (f Filter) Valid() bool {
	return f == FilterAll || ContentType(f).Valid()
}

// Matches 精确匹配类型；ALL 匹配全部
func (f Filter) Matches(c ContentType) bool {
	return f == FilterAll || ContentType(f) == c
}

func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown filter %q", s)
	}
	return f, nil
}
