// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repodoc/internal/commands"
	"github.com/temirov/repodoc/internal/config"
	"github.com/temirov/repodoc/internal/gitfiles"
	"github.com/temirov/repodoc/internal/output"
	"github.com/temirov/repodoc/internal/services/clipboard"
	"github.com/temirov/repodoc/internal/tokenizer"
	"github.com/temirov/repodoc/internal/types"
	"github.com/temirov/repodoc/internal/utils"
)

const (
	tokensFlagName  = "tokens"
	modelFlagName   = "model"
	copyFlagName    = "copy"
	configFlagName  = "config"
	versionFlagName = "version"
	globalFlagName  = "global"
	forceFlagName   = "force"

	versionTemplate      = "repodoc version: %s\n"
	defaultPath          = "."
	rootUse              = "repodoc [repository] [output]"
	rootShortDescription = "generate a single markdown document from a git repository"
	rootLongDescription  = `repodoc collects every file tracked by a git repository into one markdown
document: a directory tree, a table of contents with exact line ranges, and
each file's content in a fenced code block. A ` + utils.RulesFileName + ` file in the
repository root can exclude tracked files or include untracked ones.`
	rootUsageExample = `  # Document the current repository into repo_contents.md
  repodoc

  # Document another repository into a chosen file, with a token estimate
  repodoc ~/src/service service.md --tokens`

	initUse              = "init"
	initShortDescription = "write a starter rules file or the global configuration"
	initLongDescription  = `Write a starter ` + utils.RulesFileName + ` into the current directory, or the
global configuration file under ~/` + utils.GlobalConfigDirectoryName + ` when --global is set.`

	versionFlagDescription = "display application version"
	tokensFlagDescription  = "estimate the token count of the generated document"
	modelFlagDescription   = "tokenizer model used for the token estimate"
	copyFlagDescription    = "copy the generated document to the clipboard"
	configFlagDescription  = "path to an application configuration file"
	globalFlagDescription  = "write the global configuration instead of a local rules file"
	forceFlagDescription   = "overwrite an existing file"

	defaultTokenizerModelName = "gpt-4o"

	messageRulesLoaded          = "Loaded override rules"
	messageExcludedFiles        = "Excluding files matching override rules"
	messageIncludedFiles        = "Including additional files from override rules"
	messageFilesSelected        = "Selected files for documentation"
	messageBinaryFileDetected   = "Binary file detected"
	messageDocumentGenerated    = "Documentation generated successfully"
	messageTokenEstimate        = "Estimated token count"
	messageCopiedToClipboard    = "Document copied to clipboard"
	messageConfigurationWritten = "Configuration written"

	fieldCount    = "count"
	fieldExclude  = "exclude"
	fieldInclude  = "include"
	fieldOutput   = "output"
	fieldFiles    = "files"
	fieldLines    = "lines"
	fieldSize     = "size"
	fieldDuration = "duration"
	fieldTokens   = "tokens"
	fieldModel    = "model"
	fieldPath     = "path"
	fieldMime     = "mime"

	warningTokenizerInitFormat = "Could not initialize tokenizer: %v"
	warningTokenCountFormat    = "Could not count tokens: %v"
	warningClipboardFormat     = "Could not copy to clipboard: %v"

	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorInvalidRootFormat reports a repository path that is not a directory.
	errorInvalidRootFormat = "repository path '%s' is not a valid directory"
	// errorNotRepositoryFormat reports a directory without version control metadata.
	errorNotRepositoryFormat = "'%s' is not a git repository (missing %s directory)"
	// errorNoFilesSelected reports an empty selection after rules are applied.
	errorNoFilesSelected = "no files selected for documentation"
)

// Execute runs the repodoc application.
func Execute(applicationLogger *zap.Logger) error {
	rootCommand := createRootCommand(applicationLogger)
	return rootCommand.Execute()
}

type tokenOptions struct {
	enabled bool
	model   string
}

// generateOptions carries the fully resolved inputs for one generation run.
type generateOptions struct {
	repositoryPath string
	outputPath     string
	tokens         tokenOptions
	copyEnabled    bool
}

// createRootCommand builds the root Cobra command.
func createRootCommand(applicationLogger *zap.Logger) *cobra.Command {
	var showVersion bool
	var tokensEnabled bool
	var tokenizerModel string
	var copyEnabled bool
	var configurationPath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			repositoryArgument := defaultPath
			if len(arguments) > 0 {
				repositoryArgument = arguments[0]
			}
			absoluteRepositoryPath, absoluteError := filepath.Abs(repositoryArgument)
			if absoluteError != nil {
				return fmt.Errorf(errorAbsolutePathFormat, repositoryArgument, absoluteError)
			}
			rootInformation, statError := os.Stat(absoluteRepositoryPath)
			if statError != nil || !rootInformation.IsDir() {
				return fmt.Errorf(errorInvalidRootFormat, repositoryArgument)
			}
			gitInformation, gitStatError := os.Stat(filepath.Join(absoluteRepositoryPath, utils.GitDirectoryName))
			if gitStatError != nil || !gitInformation.IsDir() {
				return fmt.Errorf(errorNotRepositoryFormat, repositoryArgument, utils.GitDirectoryName)
			}

			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: absoluteRepositoryPath,
				ExplicitFilePath: configurationPath,
			})
			if configurationError != nil {
				return configurationError
			}

			options := generateOptions{
				repositoryPath: absoluteRepositoryPath,
				outputPath:     utils.DefaultOutputFileName,
				tokens:         tokenOptions{model: defaultTokenizerModelName},
			}
			if applicationConfiguration.Output != "" {
				options.outputPath = applicationConfiguration.Output
			}
			if len(arguments) > 1 {
				options.outputPath = arguments[1]
			}
			if applicationConfiguration.Tokens.Enabled != nil {
				options.tokens.enabled = *applicationConfiguration.Tokens.Enabled
			}
			if command.Flags().Changed(tokensFlagName) {
				options.tokens.enabled = tokensEnabled
			}
			if applicationConfiguration.Tokens.Model != "" {
				options.tokens.model = applicationConfiguration.Tokens.Model
			}
			if command.Flags().Changed(modelFlagName) {
				options.tokens.model = tokenizerModel
			}
			if applicationConfiguration.Copy != nil {
				options.copyEnabled = *applicationConfiguration.Copy
			}
			if command.Flags().Changed(copyFlagName) {
				options.copyEnabled = copyEnabled
			}

			return runGenerate(applicationLogger, options)
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().BoolVar(&tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&tokenizerModel, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	rootCommand.Flags().BoolVar(&copyEnabled, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().StringVar(&configurationPath, configFlagName, "", configFlagDescription)
	rootCommand.AddCommand(createInitCommand(applicationLogger))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand(applicationLogger *zap.Logger) *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializeError != nil {
				return initializeError
			}
			applicationLogger.Info(messageConfigurationWritten, zap.String(fieldPath, writtenPath))
			return nil
		},
	}

	initCommand.Flags().BoolVar(&globalTarget, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// runGenerate executes the selection, loading, and rendering pipeline and
// writes the assembled document. Fatal conditions return errors before the
// output file is touched; everything recoverable lands in the diagnostics
// collector and is reported after the document is written.
func runGenerate(applicationLogger *zap.Logger, options generateOptions) error {
	startTime := time.Now()
	diagnostics := types.NewDiagnostics()

	overrideRules := config.LoadRules(options.repositoryPath, diagnostics)
	if len(overrideRules.Exclude) > 0 || len(overrideRules.Include) > 0 {
		applicationLogger.Info(messageRulesLoaded,
			zap.Int(fieldExclude, len(overrideRules.Exclude)),
			zap.Int(fieldInclude, len(overrideRules.Include)))
	}

	trackedProvider := gitfiles.NewTrackedFileProvider()
	trackedFiles, trackedError := trackedProvider.ListTracked(options.repositoryPath)
	if trackedError != nil {
		return trackedError
	}

	var allFiles []string
	if len(overrideRules.Include) > 0 {
		workingTreeFiles, walkError := gitfiles.ListAllFiles(options.repositoryPath)
		if walkError != nil {
			return walkError
		}
		allFiles = workingTreeFiles
	}

	selectedPaths, selectionStats := commands.SelectFiles(trackedFiles, allFiles, overrideRules)
	if selectionStats.ExcludedCount > 0 {
		applicationLogger.Info(messageExcludedFiles, zap.Int(fieldCount, selectionStats.ExcludedCount))
	}
	if selectionStats.IncludedCount > 0 {
		applicationLogger.Info(messageIncludedFiles, zap.Int(fieldCount, selectionStats.IncludedCount))
	}
	if len(selectedPaths) == 0 {
		return errors.New(errorNoFilesSelected)
	}
	applicationLogger.Info(messageFilesSelected, zap.Int(fieldCount, len(selectedPaths)))

	selectedFiles := commands.LoadContents(options.repositoryPath, selectedPaths, diagnostics)
	for _, selectedFile := range selectedFiles {
		if selectedFile.Kind == types.FileKindBinary {
			applicationLogger.Info(messageBinaryFileDetected,
				zap.String(fieldPath, selectedFile.Path),
				zap.String(fieldMime, selectedFile.MimeType))
		}
	}

	repositoryName := filepath.Base(options.repositoryPath)
	document := output.BuildDocument(repositoryName, options.repositoryPath, selectedFiles)

	if writeError := output.NewFileSink().Write(document.Lines, options.outputPath); writeError != nil {
		return writeError
	}

	documentText := strings.Join(document.Lines, "\n")
	if options.tokens.enabled {
		reportTokenEstimate(applicationLogger, diagnostics, documentText, options.tokens.model)
	}
	if options.copyEnabled {
		if copyError := clipboard.NewService().Copy(documentText); copyError != nil {
			diagnostics.Warnf(warningClipboardFormat, copyError)
		} else {
			applicationLogger.Info(messageCopiedToClipboard)
		}
	}

	var totalSizeBytes int64
	for _, selectedFile := range selectedFiles {
		totalSizeBytes += selectedFile.SizeBytes
	}
	applicationLogger.Info(messageDocumentGenerated,
		zap.String(fieldOutput, options.outputPath),
		zap.Int(fieldFiles, len(selectedFiles)),
		zap.Int(fieldLines, len(document.Lines)),
		zap.String(fieldSize, utils.FormatFileSize(totalSizeBytes)),
		zap.Duration(fieldDuration, time.Since(startTime)))

	for _, warningMessage := range diagnostics.Warnings() {
		applicationLogger.Warn(warningMessage)
	}
	return nil
}

// reportTokenEstimate counts tokens for the assembled document. Failures
// degrade to warnings so an estimate problem never fails the run.
func reportTokenEstimate(applicationLogger *zap.Logger, diagnostics *types.Diagnostics, documentText string, modelName string) {
	tokenCounter, resolvedName, counterError := tokenizer.NewCounter(tokenizer.Config{Model: modelName})
	if counterError != nil {
		diagnostics.Warnf(warningTokenizerInitFormat, counterError)
		return
	}
	countResult, countError := tokenizer.CountBytes(tokenCounter, []byte(documentText))
	if countError != nil {
		diagnostics.Warnf(warningTokenCountFormat, countError)
		return
	}
	if countResult.Counted {
		applicationLogger.Info(messageTokenEstimate,
			zap.Int(fieldTokens, countResult.Tokens),
			zap.String(fieldModel, resolvedName))
	}
}
