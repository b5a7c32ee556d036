package schema

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Parse 将 JSON 请求体解码为记录；非对象请求体返回错误
func Parse(body []byte) (Record, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	var record Record
	if err := sonic.Unmarshal(body, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Decode 把投影后的记录映射到具体模型，字段类型不符时返回错误
func (r Record) Decode(v interface{}) error {
	data, err := sonic.Marshal(r)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(data, v)
}
