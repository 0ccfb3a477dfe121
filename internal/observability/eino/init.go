// Package eino 注册 Eino 组件的全局回调，把模板渲染接入指标与追踪
package eino

import (
	"sync"

	einocallbacks "github.com/cloudwego/eino/callbacks"
	cbtemplate "github.com/cloudwego/eino/utils/callbacks"
)

var initOnce sync.Once

// Init 注册 Eino 全局 callbacks（进程级一次）。
func Init() {
	initOnce.Do(func() {
		handler := cbtemplate.NewHandlerHelper().
			Prompt(newPromptCallbackHandler()).
			Handler()
		einocallbacks.AppendGlobalHandlers(handler)
	})
}
