package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *MemoryStore {
	t.Helper()

	store := NewMemoryStore()
	seed := []Product{
		{Name: "Apple", Price: 10},
		{Name: "Banana", Price: 5},
		{Name: "Laptop", Price: 600},
		{Name: "Phone", Price: 400},
	}

	for _, p := range seed {
		_, err := store.Add(context.Background(), p)
		require.NoError(t, err)
	}

	return store
}

func Test_Add_Assigns_Sequential_Ids_And_Creation_Timestamps(t *testing.T) {
	// Arrange
	store := NewMemoryStore()

	// Act
	first, err := store.Add(context.Background(), Product{Name: "Apple", Price: 10})
	require.NoError(t, err)

	second, err := store.Add(context.Background(), Product{Name: "Banana", Price: 5})
	require.NoError(t, err)

	// Assert
	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)
	require.False(t, first.CreatedAt.IsZero())
	require.False(t, second.CreatedAt.IsZero())
}

func Test_GetByID_Returns_ErrProductNotFound_For_Absent_Id(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetByID(context.Background(), 42)

	require.ErrorIs(t, err, ErrProductNotFound)
}

func Test_MinPrice_Filter_Returns_Expensive_Products_Ordered_By_Id(t *testing.T) {
	// Arrange
	store := seededStore(t)

	minPrice := 50.0
	filter := ProductFilter{MinPrice: &minPrice}

	// Act
	items, err := store.GetFiltered(context.Background(), filter, Page{Number: 1, Size: 10})
	require.NoError(t, err)

	total, err := store.Count(context.Background(), filter)
	require.NoError(t, err)

	// Assert
	require.Equal(t, 2, total)
	require.Len(t, items, 2)
	require.Equal(t, "Laptop", items[0].Name)
	require.Equal(t, "Phone", items[1].Name)
	require.Less(t, items[0].ID, items[1].ID)
}

func Test_Count_Matches_Unpaged_List_Length_For_All_Filter_Combinations(t *testing.T) {
	// Arrange
	store := seededStore(t)

	name := "a"
	minPrice := 8.0
	maxPrice := 500.0

	filters := []ProductFilter{
		{},
		{Name: &name},
		{MinPrice: &minPrice},
		{MaxPrice: &maxPrice},
		{Name: &name, MinPrice: &minPrice},
		{Name: &name, MaxPrice: &maxPrice},
		{MinPrice: &minPrice, MaxPrice: &maxPrice},
		{Name: &name, MinPrice: &minPrice, MaxPrice: &maxPrice},
	}

	for _, filter := range filters {
		// Act
		items, err := store.GetFiltered(context.Background(), filter, Page{Number: 1, Size: maxPageSize})
		require.NoError(t, err)

		total, err := store.Count(context.Background(), filter)
		require.NoError(t, err)

		// Assert
		require.Equal(t, total, len(items))
	}
}

func Test_Page_Slices_Skip_And_Take_Over_The_Filtered_Set(t *testing.T) {
	// Arrange
	store := seededStore(t)

	// Act
	firstPage, err := store.GetFiltered(context.Background(), ProductFilter{}, Page{Number: 1, Size: 3})
	require.NoError(t, err)

	secondPage, err := store.GetFiltered(context.Background(), ProductFilter{}, Page{Number: 2, Size: 3})
	require.NoError(t, err)

	pastTheEnd, err := store.GetFiltered(context.Background(), ProductFilter{}, Page{Number: 5, Size: 3})
	require.NoError(t, err)

	// Assert
	require.Len(t, firstPage, 3)
	require.Len(t, secondPage, 1)
	require.Equal(t, 4, secondPage[0].ID)
	require.Empty(t, pastTheEnd)
}

func Test_Update_Replaces_Mutable_Fields(t *testing.T) {
	// Arrange
	store := seededStore(t)

	existing, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)

	existing.Name = "Green Apple"
	existing.Price = 12

	// Act
	err = store.Update(context.Background(), existing)
	require.NoError(t, err)

	// Assert
	updated, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Green Apple", updated.Name)
	require.Equal(t, 12.0, updated.Price)
}

func Test_Delete_Is_A_NoOp_For_Absent_Ids(t *testing.T) {
	// Arrange
	store := seededStore(t)

	// Act
	require.NoError(t, store.Delete(context.Background(), 1))
	require.NoError(t, store.Delete(context.Background(), 1))
	require.NoError(t, store.Delete(context.Background(), 999))

	// Assert
	_, err := store.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, ErrProductNotFound)
}
