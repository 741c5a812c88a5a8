package model

import "fmt"

// MusicPlaceholder 没有真实音频上传时使用的占位标记
const MusicPlaceholder = "audio-placeholder"

// RecordedAudio 模拟录音后写入的内容标记
const RecordedAudio = "recorded-audio"

// Content 帖子内容的带标签变体，按类型解释原始字符串
type Content interface {
	Type() ContentType
	// Raw 返回线上传输用的原始字符串
	Raw() string
	isContent()
}

// ArtContent 图片作品，内容为图片地址
type ArtContent struct{ URL string }

// WritingContent 文字作品
type WritingContent struct{ Text string }

// MusicContent 声音作品，Ref 为音频引用或占位标记
type MusicContent struct{ Ref string }

// CheckInContent 打卡帖没有正文
type CheckInContent struct{}

func (ArtContent) Type() ContentType     { return ContentArt }
func (WritingContent) Type() ContentType { return ContentWriting }
func (MusicContent) Type() ContentType   { return ContentMusic }
func (CheckInContent) Type() ContentType { return ContentCheckIn }

func (c ArtContent) Raw() string     { return c.URL }
func (c WritingContent) Raw() string { return c.Text }
func (c MusicContent) Raw() string   { return c.Ref }
func (CheckInContent) Raw() string   { return "" }

func (ArtContent) isContent()     {}
func (WritingContent) isContent() {}
func (MusicContent) isContent()   {}
func (CheckInContent) isContent() {}

// IsPlaceholder reports whether a music entry carries no real audio.
func (c MusicContent) IsPlaceholder() bool { return c.Ref == MusicPlaceholder }

// NewContent 根据类型把原始字符串包装成对应变体
func NewContent(t ContentType, raw string) (Content, error) {
	switch t {
	case ContentArt:
		return ArtContent{URL: raw}, nil
	case ContentWriting:
		return WritingContent{Text: raw}, nil
	case ContentMusic:
		return MusicContent{Ref: raw}, nil
	case ContentCheckIn:
		return CheckInContent{}, nil
	default:
		return nil, fmt.Errorf("unknown content type %q", t)
	}
}
