package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The fixed column lists and the Record methods must name the same fields,
// otherwise BulkInsert rejects every row of the drifted collection.
func TestColumnsMatchRecords(t *testing.T) {
	samples := map[string]map[string]any{
		CollectionOrganizations:          Organization{}.Record(),
		CollectionTeams:                  Team{}.Record(),
		CollectionUsers:                  User{}.Record(),
		CollectionTeamMemberships:        TeamMembership{}.Record(),
		CollectionProjects:               Project{}.Record(),
		CollectionSections:               Section{}.Record(),
		CollectionTasks:                  Task{}.Record(),
		CollectionComments:               Comment{}.Record(),
		CollectionCustomFieldDefinitions: CustomFieldDefinition{}.Record(),
		CollectionCustomFieldEnumOptions: CustomFieldEnumOption{}.Record(),
		CollectionCustomFieldValues:      CustomFieldValue{}.Record(),
		CollectionTags:                   Tag{}.Record(),
		CollectionTaskTags:               TaskTag{}.Record(),
		CollectionAttachments:            Attachment{}.Record(),
	}
	require.Len(t, samples, len(collectionColumns))

	for collection, rec := range samples {
		cols := Columns(collection)
		require.Len(t, cols, len(rec), collection)
		seen := make(map[string]bool, len(cols))
		for _, col := range cols {
			require.False(t, seen[col], "%s lists %s twice", collection, col)
			seen[col] = true
			require.Contains(t, rec, col, collection)
		}
	}
}

func TestColumnsUnknownCollection(t *testing.T) {
	require.Nil(t, Columns("no_such_table"))
}
