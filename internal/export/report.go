package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/equip-dashboard/backend/internal/models"
)

// Report renders the statistics as a plain-text summary. Frequency tables
// are listed by descending count, ties broken by key, so the report is
// stable across runs.
func Report(info models.DatasetInfo, s models.Statistics) string {
	var b strings.Builder

	b.WriteString("设备清单统计报告\n")
	b.WriteString("====================\n\n")
	fmt.Fprintf(&b, "数据文件: %s\n", info.FileName)
	fmt.Fprintf(&b, "上传时间: %s\n\n", info.UploadedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "设备总数: %d\n", s.DeviceCount)
	fmt.Fprintf(&b, "部件总数: %d\n", s.ComponentCount)
	fmt.Fprintf(&b, "电机功率合计: %.2f KW\n\n", s.TotalPowerKW)

	b.WriteString("按安装位置统计设备:\n")
	writeTable(&b, s.DevicesByLocation)
	b.WriteString("\n按部件名称统计数量:\n")
	writeTable(&b, s.ComponentsByName)

	return b.String()
}

func writeTable(b *strings.Builder, table map[string]int) {
	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(table))
	for k, v := range table {
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})
	for _, e := range entries {
		fmt.Fprintf(b, "  %s: %d\n", e.key, e.count)
	}
}
