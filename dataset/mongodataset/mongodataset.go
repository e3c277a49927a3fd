/*
Package mongodataset provides functions to read datasets from MongoDB
collections and to write datasets onto them.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const idField = "_id"

/*
Open takes a context, a MongoDB database session and a collection name and
returns a dataset with the documents in the collection of the session's
default database, in natural order.

The columns of the dataset are the fields of the first document in their
order, excluding _id. Every document must define all of them, fields not in
the first document are ignored. Values that are not strings are formatted
with fmt, and all of them are trimmed of surrounding whitespace.
*/
func Open(ctx context.Context, session *mgo.Session, collection string) (*dataset.Dataset, error) {
	iter := session.DB("").C(collection).Find(nil).Sort("$natural").Iter()
	var header dataset.Row
	var rows []dataset.Row
	var doc bson.D
	for i := 0; iter.Next(&doc); i++ {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		if header == nil {
			header = Header(doc)
		}
		row, err := RowFromDocument(header, doc)
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("reading document %d of %s: %w", i+1, collection, err)
		}
		rows = append(rows, row)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading documents of %s: %w", collection, err)
	}
	if header == nil {
		return nil, fmt.Errorf("collection %s has no documents to take columns from: %w", collection, dataset.ErrMalformedDataset)
	}
	return dataset.New(header, rows)
}

/*
Write takes a context, a MongoDB database session, a collection name and a
dataset and inserts a document for every data row of the dataset onto the
collection, with fields in column order.
*/
func Write(ctx context.Context, session *mgo.Session, collection string, s *dataset.Dataset) error {
	c := session.DB("").C(collection)
	docs := make([]interface{}, 0, s.Count())
	for _, r := range s.Rows() {
		doc, err := DocumentFromRow(s.Header(), r)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	err := c.Insert(docs...)
	if err != nil {
		return fmt.Errorf("inserting %d documents on %s: %w", len(docs), collection, err)
	}
	return nil
}

// Header returns the names of the fields of the document except _id, in order
func Header(doc bson.D) dataset.Row {
	header := make(dataset.Row, 0, len(doc))
	for _, e := range doc {
		if e.Name != idField {
			header = append(header, e.Name)
		}
	}
	return header
}

/*
RowFromDocument takes a header and a document and returns the row with the
values of the document for the header's columns. An error wrapping
dataset.ErrMalformedDataset is returned if the document lacks a column.
*/
func RowFromDocument(header dataset.Row, doc bson.D) (dataset.Row, error) {
	m := doc.Map()
	row := make(dataset.Row, len(header))
	for i, name := range header {
		v, ok := m[name]
		if !ok {
			return nil, fmt.Errorf("missing field %s: %w", name, dataset.ErrMalformedDataset)
		}
		switch v := v.(type) {
		case nil:
		case string:
			row[i] = strings.TrimSpace(v)
		default:
			row[i] = strings.TrimSpace(fmt.Sprintf("%v", v))
		}
	}
	return row, nil
}

/*
DocumentFromRow takes a header and a row and returns a document with a field
for each column. Columns named _id are rejected, as MongoDB reserves it.
*/
func DocumentFromRow(header, row dataset.Row) (bson.D, error) {
	doc := make(bson.D, 0, len(header))
	for i, name := range header {
		if name == idField {
			return nil, fmt.Errorf("'%s' is reserved and cannot be used as column name", idField)
		}
		doc = append(doc, bson.DocElem{Name: name, Value: row[i]})
	}
	return doc, nil
}
