package vdom

import (
	"github.com/go-yuzu/yuzu/pkg/dom"
	"github.com/go-yuzu/yuzu/pkg/errors"
)

// Mount materializes a component onto an attachment point. The
// attachment node is replaced, in its parent, by the freshly
// materialized tree, and the live instance is returned.
//
// Mount is the only operation in the core that reports usage errors;
// past this point structural mistakes surface as panics for the
// render pass that hit them.
func Mount(ctor Ctor, attach *dom.Node) (*Instance, error) {
	if ctor == nil {
		return nil, &errors.MountError{Reason: "component constructor is nil"}
	}
	if attach == nil {
		return nil, &errors.MountError{Reason: "attachment node is nil"}
	}
	if attach.Parent() == nil {
		return nil, &errors.MountError{Reason: "attachment node is detached from any parent"}
	}

	root := &VNode{Kind: KindComponent, Ctor: ctor, Attrs: Attrs{}}
	node := Materialize(root)
	attach.ReplaceWith(node)
	return root.Instance, nil
}
