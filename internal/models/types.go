package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringArray 字符串数组类型，用于存储图片、标签等
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// AttributeValue 规格属性取值（如 颜色=红色）
type AttributeValue struct {
	AttributeID uint   `json:"attribute_id"` // 属性ID
	Attribute   string `json:"attribute"`    // 属性名（如 Color）
	ID          uint   `json:"id"`           // 取值ID
	Value       string `json:"value"`        // 取值（如 Red）
}

// AttributeValues 规格属性取值列表（保持录入顺序）
type AttributeValues []AttributeValue

// Value 实现 driver.Valuer 接口
func (a AttributeValues) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan 实现 sql.Scanner 接口
func (a *AttributeValues) Scan(value interface{}) error {
	if value == nil {
		*a = AttributeValues{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, a)
}
