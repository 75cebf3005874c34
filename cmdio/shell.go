package cmdio

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/sjzsdu/vpm/helper"
	"github.com/sjzsdu/vpm/lang"
	"github.com/sjzsdu/vpm/session"
	"github.com/sjzsdu/vpm/viewpoint"
	"github.com/sjzsdu/vpm/viewpoint/tree"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	desc  string
	run   func(ctx context.Context, args []string) (string, error)
}

// ShellProcessor 把一行命令分派到视点会话
type ShellProcessor struct {
	sess     *session.Session
	commands map[string]command
	last     string
	copyFunc func(string) error
}

// NewShellProcessor 创建命令处理器
func NewShellProcessor(sess *session.Session) *ShellProcessor {
	p := &ShellProcessor{sess: sess, copyFunc: helper.CopyToClipboard}
	p.commands = map[string]command{
		"help":    {"help", "Show available commands", p.help},
		"import":  {"import <file>...", "Import viewpoint XML files", p.importFiles},
		"export":  {"export <file>", "Export the tree to .xml, .md or .pdf", p.export},
		"tree":    {"tree [-ids] [-folders]", "Show the organized tree", p.tree},
		"stats":   {"stats", "Show tree statistics", p.stats},
		"folders": {"folders", "List folder paths", p.folders},
		"mkdir":   {"mkdir <parent> <name>", "Create a folder, use / for the root", p.mkdir},
		"rename":  {"rename <guid> <name>", "Rename a folder or viewpoint", p.rename},
		"rm":      {"rm <guid>...", "Delete nodes", p.remove},
		"mv":      {"mv <target> <guid>...", "Move tree nodes into a folder", p.move},
		"add":     {"add <target> <guid>...", "Copy source viewpoints into a folder", p.add},
		"bulk":    {"bulk <target> <name>...", "Move viewpoints matching names into a folder", p.bulk},
		"search":  {"search <name>...", "Check which names exist", p.search},
		"sort":    {"sort <target> [mode]", "Sort a folder: nat_asc, nat_desc or guid", p.sort},
		"sortsel": {"sortsel <mode> <guid>...", "Sort selected viewpoints in their positions", p.sortSelected},
		"clean":   {"clean", "Strip \" (N)\" counts from folder names", p.clean},
		"ls":      {"ls [text]", "Filter source viewpoints by name, file or guid", p.list},
		"info":    {"info <guid>", "Show node details", p.info},
		"copy":    {"copy", "Copy the last output to the clipboard", p.copy},
		"clear":   {"clear", "Remove everything from the tree and the source list", p.clear},
	}
	return p
}

// Suggestions 命令补全
func (p *ShellProcessor) Suggestions() []prompt.Suggest {
	out := make([]prompt.Suggest, 0, len(p.commands))
	for _, name := range p.names() {
		out = append(out, prompt.Suggest{Text: name, Description: lang.T(p.commands[name].desc)})
	}
	return out
}

func (p *ShellProcessor) names() []string {
	names := make([]string, 0, len(p.commands))
	for name := range p.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProcessInput 执行一行命令
func (p *ShellProcessor) ProcessInput(ctx context.Context, input string) (string, error) {
	args, err := SplitArgs(input)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}
	cmd, ok := p.commands[strings.ToLower(args[0])]
	if !ok {
		return "", fmt.Errorf("%s: %s", lang.T("Unknown command"), args[0])
	}
	out, err := cmd.run(ctx, args[1:])
	if errors.Is(err, errUsage) {
		return "", fmt.Errorf("%s: %s", lang.T("Usage"), cmd.usage)
	}
	if err != nil {
		return "", err
	}
	if args[0] != "copy" {
		p.last = out
	}
	return out, nil
}

// SplitArgs 按空白拆分，支持双引号包住含空格的参数
func SplitArgs(input string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		hasArg  bool
	)
	for _, r := range input {
		switch {
		case r == '"':
			inQuote = !inQuote
			hasArg = true
		case !inQuote && (r == ' ' || r == '\t' || r == '\n'):
			if hasArg {
				args = append(args, cur.String())
				cur.Reset()
				hasArg = false
			}
		default:
			cur.WriteRune(r)
			hasArg = true
		}
	}
	if inQuote {
		return nil, errors.New(lang.T("Unclosed quote"))
	}
	if hasArg {
		args = append(args, cur.String())
	}
	return args, nil
}

func (p *ShellProcessor) help(ctx context.Context, args []string) (string, error) {
	var b strings.Builder
	for _, name := range p.names() {
		c := p.commands[name]
		fmt.Fprintf(&b, "  %-28s %s\n", c.usage, lang.T(c.desc))
	}
	return b.String(), nil
}

func (p *ShellProcessor) importFiles(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", errUsage
	}
	var b strings.Builder
	for _, o := range p.sess.Import(ctx, args) {
		if o.Err != nil {
			fmt.Fprintf(&b, "✗ %s: %v\n", o.Path, o.Err)
			continue
		}
		r := o.Result
		fmt.Fprintf(&b, "✓ %s\n", lang.Tf("{{.File}}: {{.Layout}}, tree +{{.Tree}} (skipped {{.TreeSkipped}}), source list +{{.Pool}} (skipped {{.PoolSkipped}})", map[string]interface{}{
			"File":        o.Source,
			"Layout":      r.Layout.String(),
			"Tree":        len(r.TreeViews),
			"TreeSkipped": r.TreeSkipped,
			"Pool":        len(r.PoolAdded),
			"PoolSkipped": r.PoolSkipped,
		}))
		for _, name := range r.TreeViews {
			fmt.Fprintf(&b, "    %s\n", name)
		}
	}
	return b.String(), nil
}

func (p *ShellProcessor) export(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", errUsage
	}
	res, err := p.sess.Export(args[0])
	if err != nil {
		return "", err
	}
	return lang.Tf("Exported {{.Views}} viewpoints in {{.Folders}} folders to {{.Path}}", map[string]interface{}{
		"Views":   res.Views,
		"Folders": res.Folders,
		"Path":    res.Path,
	}), nil
}

func (p *ShellProcessor) tree(ctx context.Context, args []string) (string, error) {
	opts := tree.DefaultOptions()
	for _, a := range args {
		switch a {
		case "-ids":
			opts.ShowIDs = true
		case "-folders":
			opts.ShowViews = false
		default:
			return "", errUsage
		}
	}
	return strings.TrimSuffix(p.sess.Tree(opts), "\n"), nil
}

func (p *ShellProcessor) stats(ctx context.Context, args []string) (string, error) {
	s, pool := p.sess.Stats()
	return fmt.Sprintf("%s\n%s: %d", s.String(), lang.T("Source viewpoints"), pool), nil
}

func (p *ShellProcessor) folders(ctx context.Context, args []string) (string, error) {
	folders := p.sess.Folders()
	for i, f := range folders {
		if f == "" {
			folders[i] = "/"
		}
	}
	return strings.Join(folders, "\n"), nil
}

func (p *ShellProcessor) mkdir(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", errUsage
	}
	f, err := p.sess.MkDir(args[0], args[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s <%s>", lang.T("Folder created"), f.Path(), f.ID), nil
}

func (p *ShellProcessor) rename(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", errUsage
	}
	name := strings.Join(args[1:], " ")
	if err := p.sess.Rename(args[0], name); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", lang.T("Renamed"), name), nil
}

func (p *ShellProcessor) remove(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", errUsage
	}
	res := p.sess.Delete(args)
	return lang.Tf("Deleted {{.Folders}} folders and {{.Views}} viewpoints, skipped {{.Skipped}}", map[string]interface{}{
		"Folders": res.Folders,
		"Views":   res.Views,
		"Skipped": res.Skipped,
	}), nil
}

func (p *ShellProcessor) move(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", errUsage
	}
	res, err := p.sess.Move(args[1:], args[0])
	if err != nil {
		return "", err
	}
	return lang.Tf("Moved {{.Moved}}, skipped {{.Skipped}}. Folder views: {{.Before}} → {{.After}}", map[string]interface{}{
		"Moved":   res.Moved,
		"Skipped": res.Skipped,
		"Before":  res.Before,
		"After":   res.After,
	}), nil
}

func (p *ShellProcessor) add(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", errUsage
	}
	res, err := p.sess.Add(args[1:], args[0])
	if err != nil {
		return "", err
	}
	return lang.Tf("Added {{.Added}}, already in tree {{.Skipped}}, unknown {{.Missing}}. Folder views: {{.Before}} → {{.After}}", map[string]interface{}{
		"Added":   res.Added,
		"Skipped": res.Skipped,
		"Missing": res.Missing,
		"Before":  res.Before,
		"After":   res.After,
	}), nil
}

func (p *ShellProcessor) bulk(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", errUsage
	}
	res, err := p.sess.BulkMove(args[0], strings.Join(args[1:], " "))
	if err != nil {
		return "", err
	}
	out := lang.Tf("Moved {{.Moved}}, already in place {{.Already}}. Folder views: {{.Before}} → {{.After}}", map[string]interface{}{
		"Moved":   res.Moved,
		"Already": res.Already,
		"Before":  res.Before,
		"After":   res.After,
	})
	if len(res.NotFound) > 0 {
		out += "\n" + lang.T("Not found") + ": " + strings.Join(res.NotFound, " ")
	}
	return out, nil
}

func (p *ShellProcessor) search(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", errUsage
	}
	res := p.sess.Search(strings.Join(args, " "))
	if res.AllFound() {
		return lang.Tf("All {{.Total}} names found", map[string]interface{}{"Total": res.Total}), nil
	}
	return lang.Tf("Found {{.Found}} of {{.Total}}", map[string]interface{}{"Found": res.Found, "Total": res.Total}) +
		"\n" + lang.T("Not found") + ":\n" + strings.Join(res.NotFound, "\n"), nil
}

func (p *ShellProcessor) sort(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 || len(args) > 2 {
		return "", errUsage
	}
	mode := ""
	if len(args) == 2 {
		mode = args[1]
	}
	res, err := p.sess.Sort(args[0], mode)
	if err != nil {
		return "", err
	}
	return lang.Tf("Sorted {{.Count}} items ({{.Mode}})", map[string]interface{}{"Count": res.Count, "Mode": res.Mode.String()}), nil
}

func (p *ShellProcessor) sortSelected(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", errUsage
	}
	res, err := p.sess.SortSelected(args[1:], args[0])
	if err != nil {
		return "", err
	}
	return lang.Tf("Sorted {{.Count}} items ({{.Mode}})", map[string]interface{}{"Count": res.Count, "Mode": res.Mode.String()}), nil
}

func (p *ShellProcessor) clean(ctx context.Context, args []string) (string, error) {
	renamed := p.sess.CleanNames()
	var b strings.Builder
	b.WriteString(lang.Tf("Cleaned {{.Count}} folder names", map[string]interface{}{"Count": len(renamed)}))
	for _, r := range renamed {
		fmt.Fprintf(&b, "\n  %s → %s", r.Old, r.Node.Name)
	}
	return b.String(), nil
}

func (p *ShellProcessor) list(ctx context.Context, args []string) (string, error) {
	found := p.sess.Filter(strings.Join(args, " "))
	var b strings.Builder
	for _, n := range found {
		fmt.Fprintf(&b, "%s  <%s>  %s\n", n.Name, n.ID, n.Origin)
	}
	b.WriteString(lang.Tf("{{.Count}} viewpoints", map[string]interface{}{"Count": len(found)}))
	return b.String(), nil
}

func (p *ShellProcessor) info(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", errUsage
	}
	info, err := p.sess.Info(args[0])
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", lang.T("Name"), info.Name)
	fmt.Fprintf(&b, "guid: %s\n", info.ID)
	fmt.Fprintf(&b, "%s: %s\n", lang.T("Type"), info.Kind)
	if info.Origin != "" {
		fmt.Fprintf(&b, "%s: %s\n", lang.T("Source file"), info.Origin)
	}
	if info.InTree {
		fmt.Fprintf(&b, "%s: /%s\n", lang.T("Folder"), info.Path)
	}
	if info.Kind == viewpoint.KindFolder {
		fmt.Fprintf(&b, "%s: %d\n", lang.T("Viewpoints"), info.Views)
	}
	if info.Preview != "" {
		b.WriteString("\n" + info.Preview)
		if info.Truncated {
			b.WriteString("…")
		}
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

func (p *ShellProcessor) copy(ctx context.Context, args []string) (string, error) {
	if p.last == "" {
		return "", errors.New(lang.T("Nothing to copy"))
	}
	if err := p.copyFunc(p.last); err != nil {
		return "", err
	}
	return lang.T("Copied to clipboard"), nil
}

func (p *ShellProcessor) clear(ctx context.Context, args []string) (string, error) {
	p.sess.Clear()
	return lang.T("Cleared"), nil
}
