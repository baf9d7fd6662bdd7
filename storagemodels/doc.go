/*
Package storagemodels defines the parameter types shared by the datastores.

QueryParams:
Parameters for querying a datastore:

	params := &QueryParams{
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "PLAYER#123"},
	    },
	    IndexName: aws.String("GSI1"),
	    Limit:     aws.Int32(100),
	    TypeName:  "Player",
	}

A non-empty TypeName keeps only items whose "__type" tag equals it. Items
without a tag, or with a tag no converter claims, are returned as raw
documents rather than dropped.
*/
package storagemodels
