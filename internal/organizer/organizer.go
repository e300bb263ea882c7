package organizer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/SaucesCode/file-organizer/internal/classifier"
	"github.com/SaucesCode/file-organizer/internal/logger"
)

// collisionTimeFormat 目标位置重名时插入的时间戳格式（秒级）
// 同一秒内向同一位置移动两个同名文件仍会冲突，这是已知限制
const collisionTimeFormat = "_20060102_150405"

// Stats 单次整理的统计信息
type Stats struct {
	Total   int // 顶层文件总数
	Moved   int // 成功移动的文件数
	Skipped int // 跳过的子目录数
	Errors  int // 移动失败的文件数
}

// Organizer 将目录顶层的文件移动到各自的分类目录
// 不递归处理子目录，已归类的文件不会被二次整理
type Organizer struct {
	Fs    afero.Fs
	Stats Stats
}

// New 创建一个新的 Organizer
func New(fs afero.Fs) *Organizer {
	return &Organizer{Fs: fs}
}

// Organize 整理目录顶层的文件，返回成功移动的文件数
// byName 为 true 时优先按文件名模式归类
// 目录不存在或中途不可读时记录诊断日志并返回已累计的数量，不向上抛错
func (o *Organizer) Organize(dir string, byName bool) int {
	// 统计只覆盖当次调用
	o.Stats = Stats{}

	directory, err := filepath.Abs(dir)
	if err != nil {
		logger.Error().Err(err).Str("dir", dir).Msg("解析目录路径失败")
		return 0
	}

	exists, err := afero.DirExists(o.Fs, directory)
	if err != nil || !exists {
		logger.Error().Err(err).Str("dir", directory).Msg("目录不存在")
		return 0
	}

	logger.Info().Str("dir", directory).Bool("by_name", byName).Msg("开始整理文件")

	entries, err := afero.ReadDir(o.Fs, directory)
	if err != nil {
		logger.Error().Err(err).Str("dir", directory).Msg("读取目录失败")
		return o.Stats.Moved
	}

	for _, entry := range entries {
		// 已有的子目录整体跳过，不递归也不重新归类
		if entry.IsDir() {
			o.Stats.Skipped++
			continue
		}

		o.Stats.Total++

		// 单个文件失败不中断剩余文件的处理
		if err := o.moveToCategory(directory, entry.Name(), byName); err != nil {
			logger.Error().Err(err).Str("file", entry.Name()).Msg("移动文件失败")
			o.Stats.Errors++
		}
	}

	return o.Stats.Moved
}

// moveToCategory 将单个文件移动到其分类目录
func (o *Organizer) moveToCategory(directory, filename string, byName bool) error {
	category := classifier.Categorize(filename, byName)
	targetDir := filepath.Join(directory, filepath.FromSlash(category))

	if err := o.Fs.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("创建分类目录失败: %w", err)
	}

	targetPath := filepath.Join(targetDir, filename)

	// 目标位置已有同名文件时，在基础名和扩展名之间插入时间戳
	exists, err := afero.Exists(o.Fs, targetPath)
	if err != nil {
		return fmt.Errorf("检查目标文件失败: %w", err)
	}
	if exists {
		base, ext := splitName(filename)
		targetPath = filepath.Join(targetDir, base+time.Now().Format(collisionTimeFormat)+ext)
	}

	if err := o.move(filepath.Join(directory, filename), targetPath); err != nil {
		return err
	}

	o.Stats.Moved++
	logger.Debug().
		Str("file", filename).
		Str("category", category).
		Str("destination", targetPath).
		Msg("文件已移动")

	return nil
}

// move 移动文件，Rename 失败（如跨卷移动）时回退到复制后删除
func (o *Organizer) move(src, dst string) error {
	err := o.Fs.Rename(src, dst)
	if err == nil {
		return nil
	}

	logger.Debug().
		Err(err).
		Str("source", src).
		Str("destination", dst).
		Msg("直接重命名失败，尝试复制后删除")

	sourceFile, err := o.Fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := o.Fs.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	if err := o.Fs.Remove(src); err != nil {
		return fmt.Errorf("删除原文件失败: %w", err)
	}

	return nil
}

// splitName 将文件名拆分为基础名和扩展名
// 整个文件名以点开头时视为无扩展名
func splitName(filename string) (string, string) {
	ext := filepath.Ext(filename)
	if ext == filename {
		return filename, ""
	}
	return strings.TrimSuffix(filename, ext), ext
}
