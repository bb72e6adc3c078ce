package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/calebcase/oops"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeebo/errs"

	"github.com/calebcase/numconv"
)

// InvalidOutput is returned for an unknown output format.
var InvalidOutput = errs.Class("invalid output")

type renderFunc func(w io.Writer, r *numconv.Result) error

func renderer(name string) (renderFunc, error) {
	switch name {
	case "text":
		return renderText, nil
	case "json":
		return renderJSON, nil
	case "msgpack":
		return renderMsgpack, nil
	}

	return nil, InvalidOutput.New("%q", name)
}

// renderText writes one aligned line per form. Forms without a
// representation are shown as "-".
func renderText(w io.Writer, r *numconv.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "val\t%s\n", r.Val)

	for _, f := range numconv.Forms() {
		text, ok := r.Get(f)
		if !ok {
			text = "-"
		}

		fmt.Fprintf(tw, "%s\t%s\n", f, text)

		if f == numconv.Binary {
			fmt.Fprintf(tw, "binaryP\t%s\n", r.BinaryP)
		}
	}

	fmt.Fprintln(tw)

	if err := tw.Flush(); err != nil {
		return oops.Trace(err)
	}

	return nil
}

func renderJSON(w io.Writer, r *numconv.Result) error {
	enc := json.NewEncoder(w)

	if err := enc.Encode(r); err != nil {
		return oops.Trace(err)
	}

	return nil
}

func renderMsgpack(w io.Writer, r *numconv.Result) error {
	enc := msgpack.NewEncoder(w)

	if err := enc.Encode(r); err != nil {
		return oops.Trace(err)
	}

	return nil
}
