// Package jsontree converts JSON-like values into a tree of labelled nodes
// for a collapsible tree view.
//
// Every node is addressed by its path, the dot-joined chain of keys from
// "root", so a view can keep its expand and collapse state independently
// of the data:
//
//	v, err := jsontree.DecodeJSON(data)
//	if err != nil {
//		return err
//	}
//	root := jsontree.Convert(v, jsontree.WithFunctions(jsontree.FunctionsHide))
//	jsontree.Render(os.Stdout, root, jsontree.RenderOptions{Title: "contact.json"})
//
// Convert accepts decoded documents as well as arbitrary Go values: maps,
// slices, structs and pointers are walked by reflection, and funcs are
// shown according to the [FunctionPolicy].
package jsontree
