// Package schema 字段要求表：记录校验与字段投影
package schema

// Field 单个字段的要求
type Field struct {
	Required bool
}

// Schema 资源类型的字段表，未列出的字段视为未知字段
type Schema map[string]Field

// Record 解码后的请求体
type Record map[string]interface{}

// Validate 所有必填字段都存在且非空时返回 true。
// nil 与空字符串视为缺失；数字 0、false 视为存在。
func (s Schema) Validate(record Record) bool {
	if record == nil {
		return false
	}
	for name, field := range s {
		if !field.Required {
			continue
		}
		if !present(record[name]) {
			return false
		}
	}
	return true
}

// Extract 去掉字段表之外的字段，返回新的记录
func (s Schema) Extract(record Record) Record {
	out := make(Record, len(s))
	for name := range s {
		if v, ok := record[name]; ok {
			out[name] = v
		}
	}
	return out
}

// Missing 返回缺失的必填字段名，用于错误日志
func (s Schema) Missing(record Record) []string {
	var missing []string
	for name, field := range s {
		if field.Required && !present(record[name]) {
			missing = append(missing, name)
		}
	}
	return missing
}

func present(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	default:
		return true
	}
}
