package reporter

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/SaucesCode/file-organizer/internal/logger"
)

const (
	// oldFileAgeDays 超过该天数的文件视为可删除候选
	oldFileAgeDays = 180

	// rootLabel 报告中根目录的显示名称
	rootLabel = "Root Directory"

	// ruleWidth 报告中分隔线的长度
	ruleWidth = 50
)

// deletionMarkers 目录或文件名中出现即标记为可删除候选的关键词
// 进程启动时初始化，之后不可变
var deletionMarkers = []string{
	"TemporaryFiles",
	"BackupFiles",
	"OldFiles",
	"Duplicates",
	"Downloads",
	"Cache",
}

// fileEntry 扫描时采集的单个文件快照，写出报告行后即丢弃
type fileEntry struct {
	name    string
	size    int64
	modTime time.Time
	ageDays float64
}

// deletionCandidate 可删除候选文件及其所在相对目录
type deletionCandidate struct {
	relPath string
	name    string
	size    int64
	ageDays float64
}

// Reporter 递归扫描目录树并生成文件清单报告
type Reporter struct {
	Fs afero.Fs

	totalFiles int
	totalSize  int64
	candidates []deletionCandidate
}

// New 创建一个新的 Reporter
func New(fs afero.Fs) *Reporter {
	return &Reporter{Fs: fs}
}

// Generate 扫描目录树并在其根部写出报告，返回报告文件路径
// 目录不存在或报告无法写出时记录诊断日志并返回空字符串
func (r *Reporter) Generate(dir, reportFilename string) string {
	directory, err := filepath.Abs(dir)
	if err != nil {
		logger.Error().Err(err).Str("dir", dir).Msg("解析目录路径失败")
		return ""
	}

	exists, err := afero.DirExists(r.Fs, directory)
	if err != nil || !exists {
		logger.Error().Err(err).Str("dir", directory).Msg("目录不存在")
		return ""
	}

	reportPath := filepath.Join(directory, reportFilename)

	logger.Info().Str("dir", directory).Str("report", reportPath).Msg("开始生成报告")

	r.totalFiles = 0
	r.totalSize = 0
	r.candidates = nil

	var b strings.Builder
	fmt.Fprintf(&b, "File Organization Report - %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", ruleWidth))
	fmt.Fprintf(&b, "Directory: %s\n\n", directory)

	r.walkDir(&b, directory, directory, reportFilename, time.Now())
	r.writeSummary(&b)

	if err := afero.WriteFile(r.Fs, reportPath, []byte(b.String()), 0644); err != nil {
		logger.Error().Err(err).Str("report", reportPath).Msg("写入报告失败")
		return ""
	}

	logger.Info().
		Int("total_files", r.totalFiles).
		Str("total_size", FormatSize(r.totalSize)).
		Int("candidates", len(r.candidates)).
		Msg("报告已生成")

	return reportPath
}

// walkDir 深度优先遍历目录，先写出当前目录的文件段，再进入各子目录
// 子项按名称排序，保证同一目录树的报告在多次运行间逐字节一致
func (r *Reporter) walkDir(b *strings.Builder, root, dir, reportFilename string, now time.Time) {
	names, err := r.readNames(dir)
	if err != nil {
		// 目录中途不可读时只记录诊断，已写出的部分保留
		logger.Error().Err(err).Str("dir", dir).Msg("读取目录失败")
		return
	}

	sort.Strings(names)

	relPath, err := filepath.Rel(root, dir)
	if err != nil || relPath == "." {
		relPath = rootLabel
	}

	var files []fileEntry
	var subDirs []string
	var dirSize int64

	for _, name := range names {
		// 报告文件自身不计入清单，避免重复运行时的自引用
		if name == reportFilename {
			continue
		}

		fullPath := filepath.Join(dir, name)

		info, err := r.Fs.Stat(fullPath)
		if err != nil {
			// 元数据读取失败的条目记录为零值文件，保持文件计数一致
			// （不读元数据无法区分类型，一律按文件处理）
			logger.Warn().Err(err).Str("file", fullPath).Msg("读取文件信息失败")
			files = append(files, fileEntry{name: name})
			continue
		}

		if info.IsDir() {
			subDirs = append(subDirs, name)
			continue
		}

		entry := fileEntry{
			name:    name,
			size:    info.Size(),
			modTime: info.ModTime(),
			ageDays: now.Sub(info.ModTime()).Hours() / 24,
		}
		files = append(files, entry)
		dirSize += entry.size

		r.checkCandidate(relPath, entry)
	}

	if len(files) > 0 {
		fmt.Fprintf(b, "\n%s (%d files):\n", relPath, len(files))
		fmt.Fprintf(b, "%s\n", strings.Repeat("-", ruleWidth))

		// 按大小降序排列，便于定位大文件；同大小保持名称顺序
		sort.SliceStable(files, func(i, j int) bool { return files[i].size > files[j].size })

		for _, f := range files {
			fmt.Fprintf(b, "  %s\n", f.name)
			fmt.Fprintf(b, "    Size: %s | Modified: %s | Age: %.1f days\n",
				FormatSize(f.size), f.modTime.Format("2006-01-02 15:04"), f.ageDays)
		}

		fmt.Fprintf(b, "  Total directory size: %s\n", FormatSize(dirSize))

		r.totalFiles += len(files)
		r.totalSize += dirSize
	}

	for _, sub := range subDirs {
		r.walkDir(b, root, filepath.Join(dir, sub), reportFilename, now)
	}
}

// readNames 列出目录的直接子项名称
func (r *Reporter) readNames(dir string) ([]string, error) {
	d, err := r.Fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	return d.Readdirnames(-1)
}

// checkCandidate 按关键词和文件年龄判断文件是否为可删除候选
// 相对路径或文件名包含关键词，或文件超过 180 天未修改，满足其一即标记
func (r *Reporter) checkCandidate(relPath string, f fileEntry) {
	flagged := f.ageDays > oldFileAgeDays

	if !flagged {
		lowerPath := strings.ToLower(relPath)
		lowerName := strings.ToLower(f.name)

		for _, marker := range deletionMarkers {
			m := strings.ToLower(marker)
			if strings.Contains(lowerPath, m) || strings.Contains(lowerName, m) {
				flagged = true
				break
			}
		}
	}

	if flagged {
		r.candidates = append(r.candidates, deletionCandidate{
			relPath: relPath,
			name:    f.name,
			size:    f.size,
			ageDays: f.ageDays,
		})
	}
}

// writeSummary 写出汇总段和可删除候选段
func (r *Reporter) writeSummary(b *strings.Builder) {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintf(b, "\n%s\n", rule)
	fmt.Fprintf(b, "SUMMARY\n")
	fmt.Fprintf(b, "%s\n", rule)
	fmt.Fprintf(b, "Total Files: %d\n", r.totalFiles)
	fmt.Fprintf(b, "Total Size: %s\n\n", FormatSize(r.totalSize))

	if len(r.candidates) == 0 {
		return
	}

	fmt.Fprintf(b, "POTENTIAL DELETION CANDIDATES\n")
	fmt.Fprintf(b, "%s\n", rule)
	fmt.Fprintf(b, "The following files might be candidates for deletion:\n\n")

	sort.SliceStable(r.candidates, func(i, j int) bool {
		return r.candidates[i].size > r.candidates[j].size
	})

	var savings int64
	for _, c := range r.candidates {
		fullPath := c.name
		if c.relPath != rootLabel {
			fullPath = filepath.Join(c.relPath, c.name)
		}

		fmt.Fprintf(b, "- %s\n", fullPath)
		fmt.Fprintf(b, "  Size: %s | Age: %.1f days\n", FormatSize(c.size), c.ageDays)

		savings += c.size
	}

	// 总大小为零时跳过百分比，避免除零
	if r.totalSize > 0 {
		fmt.Fprintf(b, "\nPotential space savings: %s (%.1f%% of total)\n",
			FormatSize(savings), float64(savings)/float64(r.totalSize)*100)
	}
}
