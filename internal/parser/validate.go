package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/equip-dashboard/backend/internal/models"
)

// powerPattern is an advisory format check for the motor power column:
// a number with an optional kw/w or 千瓦 suffix. It flags suspicious text
// in a warning and never blocks reconstruction.
var powerPattern = regexp.MustCompile(`(?i)^\d+(\.\d+)?\s*(kw|w|千瓦)?$`)

// Validate inspects the normalized row sequence for structural problems.
// Checks run in order; an empty file short-circuits the rest. IsValid is
// true iff no error was recorded, warnings never affect it.
func Validate(rows []FlatRow) *models.ValidationResult {
	result := models.NewValidationResult()

	if len(rows) == 0 {
		result.AddError("文件为空或没有有效数据")
		return result
	}

	var missing []string
	for _, col := range RequiredColumns() {
		if _, ok := rows[0][col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		result.AddError(fmt.Sprintf("缺少必需的列: %s", strings.Join(missing, "、")))
	}

	hasDevice := false
	hasComponent := false
	for i, row := range rows {
		if strings.TrimSpace(row[ColDeviceCode]) != "" {
			hasDevice = true
		}
		if strings.TrimSpace(row[ColComponent]) != "" {
			hasComponent = true
		}
		if power := strings.TrimSpace(row[ColPower]); power != "" && !powerPattern.MatchString(power) {
			result.AddWarning(fmt.Sprintf("第 %d 行电机功率格式可疑: %q", i+1, power))
		}
	}
	if !hasDevice {
		result.AddError("未找到有效的设备数据")
	}
	if !hasComponent {
		result.AddWarning("未找到部件数据")
	}

	return result
}
