package flowcnt

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	flowerrors "github.com/livp123/flowstat/pkg/errors"
)

// FilterEnv is the expression environment for one output row.
// Unavailable counters compare as zero.
// FilterEnv 是单个输出行的表达式环境。不可用的计数器按零参与比较。
type FilterEnv struct {
	Namespace string `expr:"namespace"`
	Name      string `expr:"name"`
	Packets   uint64 `expr:"packets"`
	Bytes     uint64 `expr:"bytes"`
}

// Filter evaluates a row predicate such as
// `packets > 1000 && hasPrefix(name, "bgp")` against diffed readings.
// Filter 对差分后的读数求值行谓词，例如
// `packets > 1000 && hasPrefix(name, "bgp")`。
type Filter struct {
	src     string
	program *vm.Program
}

// CompileFilter compiles a filter expression. An empty source yields a
// nil filter matching everything.
// CompileFilter 编译过滤表达式。空表达式得到匹配一切的 nil 过滤器。
func CompileFilter(src string) (*Filter, error) {
	if src == "" {
		return nil, nil
	}
	program, err := expr.Compile(src, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, flowerrors.NewFilterError(src, err)
	}
	return &Filter{src: src, program: program}, nil
}

// Match reports whether one row satisfies the filter.
// Match 报告单行是否满足过滤器。
func (f *Filter) Match(namespace, name string, r Reading) (bool, error) {
	if f == nil {
		return true, nil
	}
	env := FilterEnv{
		Namespace: namespace,
		Name:      name,
		Packets:   r.Packets.Value,
		Bytes:     r.Bytes.Value,
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, flowerrors.NewFilterError(f.src, err)
	}
	return out.(bool), nil
}

// Apply removes non-matching entities from the set in place.
// Apply 就地从集合中移除不匹配的实体。
func (f *Filter) Apply(set ReadingSet) error {
	if f == nil {
		return nil
	}
	for ns, entities := range set {
		for name, r := range entities {
			ok, err := f.Match(ns, name, r)
			if err != nil {
				return err
			}
			if !ok {
				delete(entities, name)
			}
		}
	}
	return nil
}
