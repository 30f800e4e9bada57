package test

import (
	"encoding/json"
	"net/http/httptest"
)

// JSONResponseRecorder 把响应体解析成 T
type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() JSONResponseRecorder[T] {
	return JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

// MustScan 解析失败直接 panic，只在测试里用
func (r JSONResponseRecorder[T]) MustScan() T {
	var t T
	err := json.NewDecoder(r.Body).Decode(&t)
	if err != nil {
		panic(err)
	}
	return t
}
