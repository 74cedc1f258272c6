package organization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func stored(t *testing.T, id uint, name string, typ Type, parent *uint) *Organization {
	t.Helper()
	o, err := ReconstructOrganization(id, name, typ, parent, "", "", nil, time.Time{}, time.Time{})
	require.NoError(t, err)
	return o
}

func TestNewOrganization(t *testing.T) {
	o, err := NewOrganization(" Ministry of Health ", TypeMinister, uintPtr(0))
	require.NoError(t, err)
	assert.Equal(t, "Ministry of Health", o.Name())
	assert.Nil(t, o.ParentID())
	assert.NotNil(t, o.CoreValues())

	_, err = NewOrganization("x", "BUREAU", nil)
	assert.Error(t, err)
}

func TestTypeRank(t *testing.T) {
	assert.Equal(t, 1, TypeMinister.Rank())
	assert.Equal(t, 4, TypeLeadExecutive.Rank())
	assert.Equal(t, 7, TypeDesk.Rank())
}

func TestChangeParent_RejectsCycles(t *testing.T) {
	o := stored(t, 2, "Executive", TypeExecutive, uintPtr(1))

	assert.Error(t, o.ChangeParent(uintPtr(2), []uint{2}))
	// 5 -> 3 -> 2: 5 is a descendant of 2
	assert.Error(t, o.ChangeParent(uintPtr(5), []uint{5, 3, 2, 1}))
	assert.Equal(t, uint(1), *o.ParentID())

	require.NoError(t, o.ChangeParent(uintPtr(9), []uint{9, 1}))
	assert.Equal(t, uint(9), *o.ParentID())

	require.NoError(t, o.ChangeParent(nil, nil))
	assert.Nil(t, o.ParentID())
}

func TestUpdateProfile(t *testing.T) {
	o := stored(t, 1, "Ministry", TypeMinister, nil)
	vision := "Healthy citizens"
	require.NoError(t, o.UpdateProfile(Profile{Vision: &vision, CoreValues: []string{"Integrity", " "}}))
	assert.Equal(t, "Healthy citizens", o.Vision())
	assert.Equal(t, []string{"Integrity"}, o.CoreValues())
	assert.Equal(t, "", o.Mission())

	empty := " "
	assert.Error(t, o.UpdateProfile(Profile{Name: &empty}))
}

func TestBuildForest(t *testing.T) {
	orgs := []*Organization{
		stored(t, 3, "Desk B", TypeDesk, uintPtr(2)),
		stored(t, 1, "Ministry", TypeMinister, nil),
		stored(t, 2, "Lead Exec", TypeLeadExecutive, uintPtr(1)),
		stored(t, 4, "Desk A", TypeDesk, uintPtr(2)),
		stored(t, 5, "Orphan", TypeTeamLead, uintPtr(99)),
	}

	roots := BuildForest(orgs)
	require.Len(t, roots, 2)
	assert.Equal(t, "Ministry", roots[0].Organization.Name())
	assert.Equal(t, "Orphan", roots[1].Organization.Name())

	lead := roots[0].Children[0]
	assert.Equal(t, "Lead Exec", lead.Organization.Name())
	require.Len(t, lead.Children, 2)
	assert.Equal(t, "Desk A", lead.Children[0].Organization.Name())
}
