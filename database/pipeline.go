package database

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Stage builders shared by the read-model pipelines.

func matchStage(filter bson.D) bson.D {
	return bson.D{{Key: "$match", Value: filter}}
}

// newestFirst orders by _id descending, a proxy for insertion order.
func newestFirst() bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}}
}

func limitStage(n int64) bson.D {
	return bson.D{{Key: "$limit", Value: n}}
}

func lookupStage(from, localField, foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}}
}

func addFieldsStage(fields bson.D) bson.D {
	return bson.D{{Key: "$addFields", Value: fields}}
}

func unsetStage(fields ...string) bson.D {
	arr := make(bson.A, 0, len(fields))
	for _, f := range fields {
		arr = append(arr, f)
	}
	return bson.D{{Key: "$unset", Value: arr}}
}

func countStage(field string) bson.D {
	return bson.D{{Key: "$count", Value: field}}
}

// firstOf picks element 0 of an array path. An empty array yields a
// missing value, so the target field is simply not written.
func firstOf(path string) bson.D {
	return bson.D{{Key: "$arrayElemAt", Value: bson.A{path, 0}}}
}

// sizeWhere counts the elements of an array whose field equals value.
func sizeWhere(array, field string, value any) bson.D {
	return bson.D{{Key: "$size", Value: bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: array},
		{Key: "as", Value: "item"},
		{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$item." + field, value}}}},
	}}}}}
}

func sizeOf(array string) bson.D {
	return bson.D{{Key: "$size", Value: array}}
}

// channelSummary builds {fullName, avatar, username} from a joined users array.
func channelSummary(array string) bson.D {
	return bson.D{
		{Key: "fullName", Value: firstOf(array + ".fullName")},
		{Key: "avatar", Value: firstOf(array + ".avatar")},
		{Key: "username", Value: firstOf(array + ".username")},
	}
}

// withChannel joins the owner of the current document and embeds its
// summary under "channel". Documents whose owner is gone keep an empty
// channel.
func withChannel(ownerField, as string) []bson.D {
	return []bson.D{
		lookupStage(usersCollection, ownerField, "_id", "ownerArr"),
		addFieldsStage(bson.D{{Key: as, Value: channelSummary("$ownerArr")}}),
		unsetStage("ownerArr"),
	}
}

// withLikeCount joins a like collection on _id and counts positive likes.
func withLikeCount(likeColl, field, as string) []bson.D {
	return []bson.D{
		lookupStage(likeColl, "_id", field, "likesArr"),
		addFieldsStage(bson.D{{Key: as, Value: sizeWhere("$likesArr", "like", true)}}),
		unsetStage("likesArr"),
	}
}
