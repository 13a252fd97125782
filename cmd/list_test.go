package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/mutview/internal/domain"
)

func TestListCmd_Defaults(t *testing.T) {
	mockWorkflow, execute := executeWithMock(t, newListCmd(), "list")

	mockWorkflow.EXPECT().List(mock.Anything, domain.ListArgs{
		Report: defaultReportPath,
		SortBy: domain.SortByPath,
	}).Return(nil).Once()

	require.NoError(t, execute())
}

func TestListCmd_SortAndFilter(t *testing.T) {
	mockWorkflow, execute := executeWithMock(t, newListCmd(), "list", "--sort", "score", "--desc", "--filter", "parser")

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.SortBy == domain.SortByScore && args.Desc && args.Filter == "parser"
	})).Return(nil).Once()

	require.NoError(t, execute())
}

func TestListCmd_InvalidSort(t *testing.T) {
	_, execute := executeWithMock(t, newListCmd(), "list", "--sort", "size")

	require.Error(t, execute())
}
