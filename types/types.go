package types

// Run describes one pipeline execution and owns the paths of every
// artifact produced for it. The timestamp is the shared naming key for
// on-disk files; nothing downstream rediscovers artifacts by scanning
// directories.
type Run struct {
	ID         string   `json:"id"`
	Timestamp  string   `json:"timestamp"` // YYYYmmdd_HHMMSS
	Topic      string   `json:"topic"`
	ScriptPath string   `json:"script_path"`
	ImagePaths []string `json:"image_paths"`
	AudioPath  string   `json:"audio_path"`
	VideoPath  string   `json:"video_path"`
}

// Script is the generated script text plus the image prompts extracted
// from it, in appearance order. Prompt order maps 1:1 to scene order.
type Script struct {
	Text         string   `json:"text"`
	ImagePrompts []string `json:"image_prompts"`
}

// VideoMetadata holds the side-files uploaded next to the video.
type VideoMetadata struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	ThumbnailPath string   `json:"thumbnail_path,omitempty"`
}

// PipelineState tracks the outcome of one pipeline run.
type PipelineState struct {
	Run         Run            `json:"run"`
	StartedAt   string         `json:"started_at"`
	CompletedAt string         `json:"completed_at"`
	Metadata    *VideoMetadata `json:"metadata,omitempty"`
	FolderName  string         `json:"folder_name,omitempty"`
	Error       string         `json:"error,omitempty"`
}
