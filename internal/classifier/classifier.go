package classifier

import (
	"path/filepath"
	"regexp"
	"strings"
)

// extensionTable 扩展名到分类目录的映射
// 进程启动时初始化，之后不可变
var extensionTable = map[string]string{
	// 文档
	".doc":  "Documents/Word",
	".docx": "Documents/Word",
	".pdf":  "Documents/PDF",
	".txt":  "Documents/Text",
	".rtf":  "Documents/Text",
	".xlsx": "Documents/Excel",
	".xls":  "Documents/Excel",
	".pptx": "Documents/PowerPoint",
	".ppt":  "Documents/PowerPoint",

	// 图片
	".jpg":  "Images/JPEG",
	".jpeg": "Images/JPEG",
	".png":  "Images/PNG",
	".gif":  "Images/GIF",
	".bmp":  "Images/BMP",
	".svg":  "Images/SVG",

	// 音频
	".mp3":  "Audio/MP3",
	".wav":  "Audio/WAV",
	".flac": "Audio/FLAC",
	".aac":  "Audio/AAC",

	// 视频
	".mp4": "Video/MP4",
	".avi": "Video/AVI",
	".mkv": "Video/MKV",
	".mov": "Video/MOV",

	// 压缩包
	".zip": "Archives/ZIP",
	".rar": "Archives/RAR",
	".tar": "Archives/TAR",
	".gz":  "Archives/GZ",

	// 编程
	".py":   "Programming/Python",
	".java": "Programming/Java",
	".cpp":  "Programming/C++",
	".c":    "Programming/C",

	// Web 开发文件（归入同一目录）
	".html": "WebDevelopment",
	".htm":  "WebDevelopment",
	".css":  "WebDevelopment",
	".js":   "WebDevelopment",
	".php":  "WebDevelopment",
	".jsx":  "WebDevelopment",
	".ts":   "WebDevelopment",
	".tsx":  "WebDevelopment",
}

// namePattern 文件名模式到分类目录的配对
type namePattern struct {
	re       *regexp.Regexp
	category string
}

// namePatterns 文件名模式的有序列表
// 模式之间可能重叠，必须按声明顺序匹配，先命中者生效，
// 因此不能用无序的 map 表示
var namePatterns = []namePattern{
	{regexp.MustCompile(`(?i)backup|bak`), "BackupFiles"},
	{regexp.MustCompile(`(?i)temp|tmp`), "TemporaryFiles"},
	{regexp.MustCompile(`(?i)draft|wip`), "WorkInProgress"},
	{regexp.MustCompile(`(?i)old|outdated|deprecated`), "OldFiles"},
	{regexp.MustCompile(`(?i)screenshot|screen|scrn`), "Screenshots"},
	{regexp.MustCompile(`(?i)report|review`), "Reports"},
	{regexp.MustCompile(`(?i)invoice|receipt|bill`), "FinancialDocs"},
	{regexp.MustCompile(`(?i)log|logs`), "LogFiles"},
	{regexp.MustCompile(`(?i)presentation|slides`), "Presentations"},
	{regexp.MustCompile(`(?i)project|prj`), "ProjectFiles"},
	{regexp.MustCompile(`(?i)data|dataset`), "DataFiles"},
	{regexp.MustCompile(`(?i)test|testing`), "TestFiles"},
	{regexp.MustCompile(`(?i)sample|example`), "SampleFiles"},
	{regexp.MustCompile(`(?i)config|cfg|settings`), "ConfigFiles"},
	{regexp.MustCompile(`(?i)note|notes`), "Notes"},
	{regexp.MustCompile(`(?i)download|dl`), "Downloads"},
	{regexp.MustCompile(`(?i)scan|scanned`), "ScannedDocs"},
	{regexp.MustCompile(`(?i)(20\d{2})[-_]?(0[1-9]|1[0-2])[-_]?(0[1-9]|[12][0-9]|3[01])`), "DateFormattedFiles"},
	{regexp.MustCompile(`(?i)website|site|web`), "WebProjects"},
}

// Categorize 根据文件名确定分类目录（斜杠分隔的逻辑路径，如 Documents/PDF）
// byName 为 true 时优先按文件名模式匹配，未命中时回退到扩展名；
// 无法识别的扩展名归入 Other/<扩展名>，无扩展名归入 Other/No_Extension。
// 纯函数，不访问文件系统
func Categorize(filename string, byName bool) string {
	if byName {
		for _, p := range namePatterns {
			if p.re.MatchString(filename) {
				return p.category
			}
		}
	}

	ext := extOf(filename)
	if category, ok := extensionTable[ext]; ok {
		return category
	}

	if ext == "" {
		return "Other/No_Extension"
	}

	return "Other/" + ext[1:]
}

// extOf 提取小写扩展名（含点号）
// 整个文件名以点开头时（如 .bashrc）视为无扩展名
func extOf(filename string) string {
	ext := filepath.Ext(filename)
	if ext == filename {
		return ""
	}
	return strings.ToLower(ext)
}
