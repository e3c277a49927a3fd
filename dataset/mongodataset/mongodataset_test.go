package mongodataset

import (
	"errors"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/stretchr/testify/require"
	"gopkg.in/mgo.v2/bson"
)

func TestHeader(t *testing.T) {
	doc := bson.D{{Name: "_id", Value: bson.NewObjectId()}, {Name: "id", Value: "1"}, {Name: "outlook", Value: "sunny"}, {Name: "play", Value: "no"}}
	require.Equal(t, dataset.Row{"id", "outlook", "play"}, Header(doc))
}

func TestRowFromDocument(t *testing.T) {
	header := dataset.Row{"id", "outlook", "humidity", "play"}
	doc := bson.D{{Name: "play", Value: "no "}, {Name: "id", Value: 7}, {Name: "outlook", Value: " sunny"}, {Name: "humidity", Value: nil}}
	row, err := RowFromDocument(header, doc)
	require.NoError(t, err)
	require.Equal(t, dataset.Row{"7", "sunny", "", "no"}, row)

	_, err = RowFromDocument(header, bson.D{{Name: "id", Value: "1"}})
	require.True(t, errors.Is(err, dataset.ErrMalformedDataset))
}

func TestDocumentFromRow(t *testing.T) {
	header := dataset.Row{"id", "outlook", "play"}
	doc, err := DocumentFromRow(header, dataset.Row{"1", "sunny", "no"})
	require.NoError(t, err)
	require.Equal(t, bson.D{{Name: "id", Value: "1"}, {Name: "outlook", Value: "sunny"}, {Name: "play", Value: "no"}}, doc)

	row, err := RowFromDocument(Header(doc), doc)
	require.NoError(t, err)
	require.Equal(t, dataset.Row{"1", "sunny", "no"}, row)

	_, err = DocumentFromRow(dataset.Row{"_id", "play"}, dataset.Row{"1", "no"})
	require.Error(t, err)
}
