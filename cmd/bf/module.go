package main

import (
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

type Module struct {
	dscope.Module
	VM     bfvm.Module
	Debugs debugs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
